package stringify

// StructField is a single named field of a struct that is rendered by Struct.
type StructField struct {
	name  string
	value interface{}
}

// NewStructField creates a new StructField from the given details.
func NewStructField(name string, value interface{}) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

// String returns a human-readable version of the StructField.
func (structField *StructField) String() (result string) {
	return structField.name + ": " + Interface(structField.value)
}
