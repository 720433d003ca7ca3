package tag

//go:generate go tool stringer -type=Tag -linecomment -output=tag_string.go

// Tag identifies one method of ser.Serializer.
type Tag int

const (
	_ Tag = iota // zero is not a valid tag

	Bool           // bool
	I8             // i8
	I16            // i16
	I32            // i32
	I64            // i64
	U8             // u8
	U16            // u16
	U32            // u32
	U64            // u64
	F32            // f32
	F64            // f64
	Char           // char
	Str            // str
	Bytes          // bytes
	None           // none
	Some           // some
	Unit           // unit
	UnitStruct     // unit_struct
	UnitVariant    // unit_variant
	NewtypeStruct  // newtype_struct
	NewtypeVariant // newtype_variant
	Seq            // seq
	Tuple          // tuple
	TupleStruct    // tuple_struct
	TupleVariant   // tuple_variant
	Map            // map
	Struct         // struct
	StructVariant  // struct_variant

	// Total is the number of tags.
	Total = int(iota) - 1
)

var (
	byName   map[string]Tag
	byMethod map[string]Tag
)

func init() {
	byName = make(map[string]Tag, Total)
	byMethod = make(map[string]Tag, Total)

	for _, t := range All() {
		byName[t.String()] = t
		byMethod[t.Method()] = t
	}
}

// All returns every tag in declaration order.
func All() []Tag {
	tags := make([]Tag, 0, Total)
	for t := Bool; t <= StructVariant; t++ {
		tags = append(tags, t)
	}

	return tags
}

// Lookup returns the tag with the given canonical name. Names are matched
// exactly: "Bool" or "unit-struct" are not tags.
func Lookup(name string) (Tag, bool) {
	t, ok := byName[name]
	return t, ok
}

// ByMethod returns the tag of a ser.Serializer method name.
func ByMethod(method string) (Tag, bool) {
	t, ok := byMethod[method]
	return t, ok
}

// IsValid reports whether t is one of the defined tags.
func (t Tag) IsValid() bool {
	return t >= Bool && t <= StructVariant
}

// IsCompound reports whether the method returns a compound state instead of Ok.
func (t Tag) IsCompound() bool {
	return t >= Seq && t <= StructVariant
}

// IsVariant reports whether the method carries the enum name, index and variant.
func (t Tag) IsVariant() bool {
	switch t {
	default:
		return false
	case UnitVariant, NewtypeVariant, TupleVariant, StructVariant:
		return true
	}
}
