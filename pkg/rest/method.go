package rest

import "strings"

// Method is an HTTP method token. Request files carry it as their extension,
// in exactly this case.
type Method string

const (
	GET     Method = "GET"
	POST    Method = "POST"
	PUT     Method = "PUT"
	PATCH   Method = "PATCH"
	DELETE  Method = "DELETE"
	HEAD    Method = "HEAD"
	OPTIONS Method = "OPTIONS"
)

// Methods lists every recognized method token.
var Methods = []Method{GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS}

// IsMethod reports whether s is a recognized method token (case-sensitive).
func IsMethod(s string) bool {
	for _, m := range Methods {
		if string(m) == s {
			return true
		}
	}
	return false
}

// ParseMethod normalizes user input such as "post" to a Method.
func ParseMethod(s string) (Method, bool) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	return m, IsMethod(string(m))
}

// SplitFileName splits a request filename on its last dot. ok is false when
// the name part is empty or the extension is not a method token.
func SplitFileName(file string) (name string, method Method, ok bool) {
	idx := strings.LastIndex(file, ".")
	if idx <= 0 {
		return "", "", false
	}
	name, ext := file[:idx], file[idx+1:]
	if !IsMethod(ext) {
		return "", "", false
	}
	return name, Method(ext), true
}

// FileName returns the on-disk filename of a request.
func FileName(name string, method Method) string {
	return name + "." + string(method)
}
