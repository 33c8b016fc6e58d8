package sqltypes

// Bits fixes the bit width of a Uint. Implementations are empty marker
// structs; Bits must return a multiple of 8 no larger than 256.
type Bits interface {
	Bits() int
}

type (
	Bits64  struct{}
	Bits128 struct{}
	Bits256 struct{}
)

func (Bits64) Bits() int  { return 64 }
func (Bits128) Bits() int { return 128 }
func (Bits256) Bits() int { return 256 }

// Width fixes the byte length of a FixedBytes. Callers may declare their own
// marker for lengths not listed here.
type Width interface {
	Size() int
}

type (
	W1  struct{}
	W2  struct{}
	W4  struct{}
	W8  struct{}
	W16 struct{}
	W32 struct{}
)

func (W1) Size() int  { return 1 }
func (W2) Size() int  { return 2 }
func (W4) Size() int  { return 4 }
func (W8) Size() int  { return 8 }
func (W16) Size() int { return 16 }
func (W32) Size() int { return 32 }

func bitsOf[B Bits]() int {
	var b B
	return b.Bits()
}

func sizeOf[W Width]() int {
	var w W
	return w.Size()
}
