package wire

import (
	"strings"
)

// Question is the (name, type, class) tuple used as a cache key and as the
// single question of every outgoing query. It is a comparable value type.
type Question struct {
	Name  string
	Type  Type
	Class Class
}

// NewQuestion returns a Question with name in the normalized form used as
// cache key: lowercase, no trailing dot, the root zone written as ".".
func NewQuestion(name string, qtype Type, qclass Class) Question {
	return Question{Name: Normalize(name), Type: qtype, Class: qclass}
}

// Normalize lowercases name and strips the trailing dot. The empty name and
// "." both normalize to ".".
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	if name == "" {
		name = "."
	}
	return name
}

func (q Question) String() string {
	return q.Name + " " + q.Class.String() + " " + q.Type.String()
}
