package semanticlogger

import "reflect"

// unknownName is used when no type is given to FromType.
const unknownName = "unknown"

// FromType returns a Logger named after the fully-qualified name of t, e.g.
// "github.com/acme/billing.Invoice". Pointer types resolve to their element
// type. Unnamed types use their type literal.
func FromType(t reflect.Type) *Logger {
	return FromName(typeName(t))
}

// For returns a Logger named after the type T.
func For[T any]() *Logger {
	return FromType(reflect.TypeFor[T]())
}

// FromName returns a Logger bound to the backend's delegate for name.
// Each call returns a new Logger; whether two Loggers with the same name
// share a delegate is up to the backend.
func FromName(name string) *Logger {
	return newLogger(CurrentBackend().Named(name))
}

// FromDelegate returns a Logger that forwards to d as is.
func FromDelegate(d Delegate) *Logger {
	return newLogger(d)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return unknownName
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
