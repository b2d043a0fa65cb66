package flat

import (
	"github.com/gogpu/gg"

	"github.com/matzehuels/papernet/pkg/topology"
)

// Alphabet holds the tab label symbols, used in order and cycled.
const Alphabet = `0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!@#$%^&*+=~:;<>?/|".,[{(\]})`

// Symbol returns the glyph of label index l.
func Symbol(l int) string {
	return string(Alphabet[l%len(Alphabet)])
}

// AssignLabels clears all labels and gives every unglued edge with a
// neighbour a label shared with the matching edge of that neighbour. It
// returns the number of tab pairs.
func AssignLabels(s *topology.Store) int {
	for _, c := range s.Cells() {
		for e := range c.Labels {
			c.Labels[e] = topology.None
		}
	}

	next := 0
	for i, c := range s.Cells() {
		for e := range c.Neighbors {
			if c.Labels[e] != topology.None || s.Glued(i, e) {
				continue
			}
			j, back, ok := s.BackEdge(i, e)
			if !ok {
				continue
			}
			l := next % len(Alphabet)
			next++
			c.Labels[e] = l
			s.Cell(j).Labels[back] = l
		}
	}
	return next
}

// tabShades lists, per bit of a label index, the channel it darkens
// (0 blue, 1 green, 2 red) and by how much.
var tabShades = [9]struct {
	channel int
	amount  uint8
}{
	{0, 0x80}, {1, 0x80}, {2, 0x80},
	{0, 0x40}, {1, 0x40}, {2, 0x40},
	{0, 0x20}, {1, 0x20}, {2, 0x20},
}

// TabRGB returns the 8-bit tab colour for label index l: white, with each set
// bit of l subtracting a fixed amount from one channel.
func TabRGB(l int) (r, g, b uint8) {
	ch := [3]uint8{0xFF, 0xFF, 0xFF}
	for bit, sh := range tabShades {
		if l&(1<<bit) != 0 {
			ch[sh.channel] -= sh.amount
		}
	}
	return ch[2], ch[1], ch[0]
}

// TabColor returns the tab colour for label index l.
func TabColor(l int) gg.RGBA {
	r, g, b := TabRGB(l)
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}
