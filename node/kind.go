package node

//Kind represents JSON node kind
type Kind int

const (
	KindNull   = Kind(0)
	KindBool   = Kind(1)
	KindNumber = Kind(2)
	KindString = Kind(3)
	KindArray  = Kind(4)
	KindObject = Kind(5)
)

//IsScalar returns true for non container kinds
func (k Kind) IsScalar() bool {
	switch k {
	case KindArray, KindObject:
		return false
	}
	return true
}

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}
