package dllist

import (
	"fmt"
	"io"
	"strings"

	"github.com/rakibulrs/dllist/internal/arena"
)

var _ fmt.Stringer = &List[int]{}
var _ io.WriterTo = &List[int]{}

// String renders l as its elements separated by spaces between "[ " and " ]", for example
// "[ 1 2 3 ]". An empty list renders as "[ ]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	if l != nil {
		for h := l.head; h != arena.None; {
			n := l.nodes.Get(h)
			fmt.Fprint(&sb, n.value)
			sb.WriteByte(' ')
			h = n.next
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// WriteTo writes the rendering returned by String to w.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String())
	return int64(n), err
}

// Equal returns true if a and b hold equal elements in the same order. A nil list is equal to an
// empty one.
func Equal[T comparable](a, b *List[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return (a == nil || a.IsEmpty()) && (b == nil || b.IsEmpty())
	}
	if a.size != b.size {
		return false
	}
	ha, hb := a.head, b.head
	for ha != arena.None {
		na, nb := a.nodes.Get(ha), b.nodes.Get(hb)
		if na.value != nb.value {
			return false
		}
		ha, hb = na.next, nb.next
	}
	return true
}

// Equal returns true if l and other hold equal elements in the same order.
func (l *List[T]) Equal(other *List[T]) bool { return Equal(l, other) }
