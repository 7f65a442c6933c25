package checker

//Checker represents a compiled value check
type Checker interface {
	Check(value interface{}) error
}

//Factory creates a compiled checker for a check declaration
type Factory interface {
	Name() string
	New(check *Check) (Checker, error)
}

//Compiled represents a declared check with its compiled checker
type Compiled struct {
	*Check
	checker Checker
}

//Validate verifies the supplied value
func (c *Compiled) Validate(value interface{}) error {
	return c.checker.Check(value)
}

//Check represents a declared field check; parameters irrelevant to the named
//checker are ignored at compile time
type Check struct {
	Name       string
	Strict     bool
	MinLength  *int
	MaxLength  *int
	Pattern    string
	Transform  string
	Min        *float64
	Max        *float64
	MultipleOf *float64
	Format     string
	Values     []interface{}
}

const (
	//TransformStrip trims surrounding whitespace before string checks
	TransformStrip = "strip"
	//TransformLower lowercases value before string checks
	TransformLower = "lower"
	//TransformUpper uppercases value before string checks
	TransformUpper = "upper"
)
