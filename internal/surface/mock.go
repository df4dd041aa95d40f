// internal/surface/mock.go
package surface

// Mock is a test double for a surface.
type Mock struct {
	track        Rect
	knob         Rect
	knobX        float64
	fillWidth    float64
	visible      map[Element]bool
	message      string
	messages     []string
	convertFails bool
	destroyed    int
	knobWrites   int
}

// NewMock creates a mock with a 200-wide track centred on the origin and a
// 10-wide knob.
func NewMock() *Mock {
	return &Mock{
		track: Rect{Size: Size{W: 200, H: 10}, Scale: Point{X: 1, Y: 1}},
		knob:  Rect{Size: Size{W: 10, H: 10}, Scale: Point{X: 1, Y: 1}},
		visible: map[Element]bool{
			ElementPlay:    true,
			ElementPause:   true,
			ElementLoading: true,
			ElementMessage: true,
		},
	}
}

func (m *Mock) Track() Rect { return m.track }

func (m *Mock) Knob() Rect {
	k := m.knob
	k.Center.X = m.knobX + k.Size.W/2
	return k
}

func (m *Mock) SetKnobX(x float64) {
	m.knobX = x
	m.knobWrites++
}

func (m *Mock) SetFillWidth(w float64) { m.fillWidth = w }

func (m *Mock) SetVisible(e Element, visible bool) { m.visible[e] = visible }

func (m *Mock) SetMessage(text string) {
	m.message = text
	m.messages = append(m.messages, text)
}

func (m *Mock) ScreenToLocal(r Rect, p Point) (Point, bool) {
	if m.convertFails {
		return Point{}, false
	}
	return ScreenToLocal(r, p)
}

func (m *Mock) Destroy() { m.destroyed++ }

// Test helpers

func (m *Mock) SetTrack(r Rect) { m.track = r }

func (m *Mock) SetConvertFails(fail bool) { m.convertFails = fail }

func (m *Mock) KnobX() float64 { return m.knobX }

func (m *Mock) KnobWrites() int { return m.knobWrites }

func (m *Mock) FillWidth() float64 { return m.fillWidth }

func (m *Mock) Visible(e Element) bool { return m.visible[e] }

func (m *Mock) Message() string { return m.message }

func (m *Mock) Messages() []string { return m.messages }

func (m *Mock) Destroyed() int { return m.destroyed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
