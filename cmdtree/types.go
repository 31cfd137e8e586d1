package cmdtree

import "strings"

// TypeKind selects the category of a parameter's declared type.
type TypeKind int

const (
	TypePrimitive TypeKind = iota
	TypeEnum
	TypeStructured
	TypeCollection
)

// PrimitiveKind enumerates the scalar types a parameter can declare.
type PrimitiveKind int

const (
	String PrimitiveKind = iota
	Bool
	Int
	Int64
	Uint
	Float
	Rune
)

func (k PrimitiveKind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Rune:
		return "char"
	default:
		return "unknown"
	}
}

// StructuredKind enumerates the structured types with fixed parse strategies.
type StructuredKind int

const (
	URI StructuredKind = iota
	Timestamp
	Duration
	UUID
	FilePath
	DirPath
	// InputFile is opened during binding and released when the action
	// invocation completes.
	InputFile
)

func (k StructuredKind) String() string {
	switch k {
	case URI:
		return "URI"
	case Timestamp:
		return "timestamp"
	case Duration:
		return "duration"
	case UUID:
		return "UUID"
	case FilePath:
		return "file path"
	case DirPath:
		return "directory path"
	case InputFile:
		return "input file"
	default:
		return "unknown"
	}
}

// TypeDescriptor describes the declared type of a parameter. Exactly one of
// the variant fields is meaningful, selected by Kind.
type TypeDescriptor struct {
	Kind       TypeKind
	Primitive  PrimitiveKind
	Enum       *EnumType
	Structured StructuredKind
	Elem       *TypeDescriptor // collection element type
}

// Name returns a human-readable name for error messages.
func (t TypeDescriptor) Name() string {
	switch t.Kind {
	case TypePrimitive:
		return t.Primitive.String()
	case TypeEnum:
		return t.Enum.Name
	case TypeStructured:
		return t.Structured.String()
	case TypeCollection:
		return "list of " + t.Elem.Name()
	default:
		return "unknown"
	}
}

// Primitive builds a scalar type descriptor.
func Primitive(k PrimitiveKind) TypeDescriptor {
	return TypeDescriptor{Kind: TypePrimitive, Primitive: k}
}

// Enum builds an enum type descriptor.
func Enum(e *EnumType) TypeDescriptor {
	return TypeDescriptor{Kind: TypeEnum, Enum: e}
}

// Structured builds a structured type descriptor.
func Structured(k StructuredKind) TypeDescriptor {
	return TypeDescriptor{Kind: TypeStructured, Structured: k}
}

// Collection builds a comma-separated collection descriptor over elem.
func Collection(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: TypeCollection, Elem: &elem}
}

// EnumMember is one named value of an EnumType.
type EnumMember struct {
	Name  string
	Value int
}

// EnumType is a runtime-declared enumeration. When Flags is true, values may
// be combined from comma-separated member lists with bitwise OR.
type EnumType struct {
	Name    string
	Members []EnumMember
	Flags   bool
}

// Lookup finds a member by case-insensitive name.
func (e *EnumType) Lookup(name string) (int, bool) {
	for _, m := range e.Members {
		if strings.EqualFold(m.Name, name) {
			return m.Value, true
		}
	}
	return 0, false
}

// MemberNames returns the member names in declaration order.
func (e *EnumType) MemberNames() []string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}
	return names
}
