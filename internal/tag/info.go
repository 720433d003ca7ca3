package tag

// Param is one parameter of a serializer method.
type Param struct {
	// Name is the natural parameter name, used when the value is exposed.
	Name string
	// Type is the Go type of the parameter.
	Type string
}

// Info describes the method a tag stands for.
type Info struct {
	Tag Tag
	// Method is the Go method name on ser.Serializer.
	Method string
	// Params are the method parameters in declaration order.
	Params []Param
	// Exposed is the index in Params of the payload made visible to templates,
	// or -1 when the method carries only metadata.
	Exposed int
	// State is the ser compound state interface returned by the method, empty
	// when the method returns Ok.
	State string
}

// ExposedParam returns the exposed parameter, if any.
func (i Info) ExposedParam() (Param, bool) {
	if i.Exposed < 0 {
		return Param{}, false
	}

	return i.Params[i.Exposed], true
}

// ExposesValue reports whether templates may reference the payload.
func (i Info) ExposesValue() bool {
	return i.Exposed >= 0
}

var (
	pName    = Param{Name: "name", Type: "string"}
	pIndex   = Param{Name: "variantIndex", Type: "uint32"}
	pVariant = Param{Name: "variant", Type: "string"}
	pValue   = Param{Name: "value", Type: "any"}
	pLen     = Param{Name: "length", Type: "int"}
	pLenOpt  = Param{Name: "length", Type: "*int"}
)

func value(typ string) []Param {
	return []Param{{Name: "v", Type: typ}}
}

var infos = [...]Info{
	Bool:  {Method: "SerializeBool", Params: value("bool"), Exposed: 0},
	I8:    {Method: "SerializeI8", Params: value("int8"), Exposed: 0},
	I16:   {Method: "SerializeI16", Params: value("int16"), Exposed: 0},
	I32:   {Method: "SerializeI32", Params: value("int32"), Exposed: 0},
	I64:   {Method: "SerializeI64", Params: value("int64"), Exposed: 0},
	U8:    {Method: "SerializeU8", Params: value("uint8"), Exposed: 0},
	U16:   {Method: "SerializeU16", Params: value("uint16"), Exposed: 0},
	U32:   {Method: "SerializeU32", Params: value("uint32"), Exposed: 0},
	U64:   {Method: "SerializeU64", Params: value("uint64"), Exposed: 0},
	F32:   {Method: "SerializeF32", Params: value("float32"), Exposed: 0},
	F64:   {Method: "SerializeF64", Params: value("float64"), Exposed: 0},
	Char:  {Method: "SerializeChar", Params: value("rune"), Exposed: 0},
	Str:   {Method: "SerializeStr", Params: value("string"), Exposed: 0},
	Bytes: {Method: "SerializeBytes", Params: value("[]byte"), Exposed: 0},

	None: {Method: "SerializeNone", Exposed: -1},
	Some: {Method: "SerializeSome", Params: []Param{pValue}, Exposed: 0},
	Unit: {Method: "SerializeUnit", Exposed: -1},

	UnitStruct: {Method: "SerializeUnitStruct", Params: []Param{pName}, Exposed: -1},
	UnitVariant: {
		Method:  "SerializeUnitVariant",
		Params:  []Param{pName, pIndex, pVariant},
		Exposed: -1,
	},
	NewtypeStruct: {
		Method:  "SerializeNewtypeStruct",
		Params:  []Param{pName, pValue},
		Exposed: 1,
	},
	NewtypeVariant: {
		Method:  "SerializeNewtypeVariant",
		Params:  []Param{pName, pIndex, pVariant, pValue},
		Exposed: 3,
	},

	Seq:   {Method: "SerializeSeq", Params: []Param{pLenOpt}, Exposed: -1, State: "SerializeSeq"},
	Tuple: {Method: "SerializeTuple", Params: []Param{pLen}, Exposed: -1, State: "SerializeTuple"},
	TupleStruct: {
		Method:  "SerializeTupleStruct",
		Params:  []Param{pName, pLen},
		Exposed: -1,
		State:   "SerializeTupleStruct",
	},
	TupleVariant: {
		Method:  "SerializeTupleVariant",
		Params:  []Param{pName, pIndex, pVariant, pLen},
		Exposed: -1,
		State:   "SerializeTupleVariant",
	},
	Map: {Method: "SerializeMap", Params: []Param{pLenOpt}, Exposed: -1, State: "SerializeMap"},
	Struct: {
		Method:  "SerializeStruct",
		Params:  []Param{pName, pLen},
		Exposed: -1,
		State:   "SerializeStruct",
	},
	StructVariant: {
		Method:  "SerializeStructVariant",
		Params:  []Param{pName, pIndex, pVariant, pLen},
		Exposed: -1,
		State:   "SerializeStructVariant",
	},
}

// Info returns the method description of t. It panics on an invalid tag.
func (t Tag) Info() Info {
	if !t.IsValid() {
		panic("tag: invalid tag " + t.String())
	}

	info := infos[t]
	info.Tag = t

	return info
}

// Method returns the Go method name of t.
func (t Tag) Method() string {
	return t.Info().Method
}
