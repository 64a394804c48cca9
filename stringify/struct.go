package stringify

import (
	"strings"

	"github.com/kr/text"
)

// Struct returns a human-readable version of a struct with the given name and fields.
func Struct(name string, fields ...*StructField) string {
	return structBuilder{
		name:   name,
		fields: fields,
	}.String()
}

type structBuilder struct {
	name   string
	fields []*StructField
}

func (stringifyStruct structBuilder) String() (result string) {
	result = stringifyStruct.name + " {\n"

	for _, field := range stringifyStruct.fields {
		result += text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize))
	}

	result += "}"

	return result
}
