// Package ser defines the serializer contract that stub-generator implements.
//
// The method set mirrors a data-model serializer: one method per primitive,
// optional, unit, newtype and compound shape. Compound methods return a state
// value that receives the elements and finishes with End.
package ser

// Serializer is implemented by every type that accepts values of the data
// model. Ok is the value produced by a successful serialization.
type Serializer[Ok any] interface {
	SerializeBool(v bool) (Ok, error)

	SerializeI8(v int8) (Ok, error)
	SerializeI16(v int16) (Ok, error)
	SerializeI32(v int32) (Ok, error)
	SerializeI64(v int64) (Ok, error)

	SerializeU8(v uint8) (Ok, error)
	SerializeU16(v uint16) (Ok, error)
	SerializeU32(v uint32) (Ok, error)
	SerializeU64(v uint64) (Ok, error)

	SerializeF32(v float32) (Ok, error)
	SerializeF64(v float64) (Ok, error)

	SerializeChar(v rune) (Ok, error)
	SerializeStr(v string) (Ok, error)
	SerializeBytes(v []byte) (Ok, error)

	SerializeNone() (Ok, error)
	SerializeSome(value any) (Ok, error)

	SerializeUnit() (Ok, error)
	SerializeUnitStruct(name string) (Ok, error)
	SerializeUnitVariant(name string, variantIndex uint32, variant string) (Ok, error)

	SerializeNewtypeStruct(name string, value any) (Ok, error)
	SerializeNewtypeVariant(name string, variantIndex uint32, variant string, value any) (Ok, error)

	// SerializeSeq begins a sequence. length is nil when the size is unknown.
	SerializeSeq(length *int) (SerializeSeq[Ok], error)
	SerializeTuple(length int) (SerializeTuple[Ok], error)
	SerializeTupleStruct(name string, length int) (SerializeTupleStruct[Ok], error)
	SerializeTupleVariant(name string, variantIndex uint32, variant string, length int) (SerializeTupleVariant[Ok], error)
	// SerializeMap begins a map. length is nil when the size is unknown.
	SerializeMap(length *int) (SerializeMap[Ok], error)
	SerializeStruct(name string, length int) (SerializeStruct[Ok], error)
	SerializeStructVariant(name string, variantIndex uint32, variant string, length int) (SerializeStructVariant[Ok], error)
}

// SerializeSeq receives the elements of a sequence.
type SerializeSeq[Ok any] interface {
	SerializeElement(value any) error
	End() (Ok, error)
}

// SerializeTuple receives the elements of a tuple.
type SerializeTuple[Ok any] interface {
	SerializeElement(value any) error
	End() (Ok, error)
}

// SerializeTupleStruct receives the fields of a tuple struct.
type SerializeTupleStruct[Ok any] interface {
	SerializeField(value any) error
	End() (Ok, error)
}

// SerializeTupleVariant receives the fields of a tuple variant.
type SerializeTupleVariant[Ok any] interface {
	SerializeField(value any) error
	End() (Ok, error)
}

// SerializeMap receives the entries of a map.
type SerializeMap[Ok any] interface {
	SerializeKey(key any) error
	SerializeValue(value any) error
	End() (Ok, error)
}

// SerializeStruct receives the named fields of a struct.
type SerializeStruct[Ok any] interface {
	SerializeField(key string, value any) error
	SkipField(key string) error
	End() (Ok, error)
}

// SerializeStructVariant receives the named fields of a struct variant.
type SerializeStructVariant[Ok any] interface {
	SerializeField(key string, value any) error
	SkipField(key string) error
	End() (Ok, error)
}
