package ser

import "github.com/cockroachdb/errors"

// ErrImpossible is returned by every method of Impossible.
var ErrImpossible = errors.New("ser: impossible serializer state")

// Impossible is the state type of a serializer that never produces compound
// values. Serializers whose compound methods only fail can return it where a
// non-nil state is required.
type Impossible[Ok any] struct{}

func (Impossible[Ok]) SerializeElement(any) error { return ErrImpossible }

func (Impossible[Ok]) SerializeKey(any) error { return ErrImpossible }

func (Impossible[Ok]) SerializeValue(any) error { return ErrImpossible }

func (Impossible[Ok]) SkipField(string) error { return ErrImpossible }

func (Impossible[Ok]) End() (Ok, error) {
	var zero Ok
	return zero, ErrImpossible
}

// ImpossibleStruct is Impossible for the struct and struct variant states,
// whose SerializeField takes a key.
type ImpossibleStruct[Ok any] struct {
	Impossible[Ok]
}

func (ImpossibleStruct[Ok]) SerializeField(string, any) error { return ErrImpossible }

// ImpossibleTuple is Impossible for the tuple struct and tuple variant states.
type ImpossibleTuple[Ok any] struct {
	Impossible[Ok]
}

func (ImpossibleTuple[Ok]) SerializeField(any) error { return ErrImpossible }

var (
	_ SerializeSeq[struct{}]           = Impossible[struct{}]{}
	_ SerializeTuple[struct{}]         = Impossible[struct{}]{}
	_ SerializeMap[struct{}]           = Impossible[struct{}]{}
	_ SerializeTupleStruct[struct{}]   = ImpossibleTuple[struct{}]{}
	_ SerializeTupleVariant[struct{}]  = ImpossibleTuple[struct{}]{}
	_ SerializeStruct[struct{}]        = ImpossibleStruct[struct{}]{}
	_ SerializeStructVariant[struct{}] = ImpossibleStruct[struct{}]{}
)
