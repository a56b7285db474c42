package traceback

import "fmt"

// field is a single annotation of a record.
type field struct {
	key string
	val interface{}
}

// fields holds the annotations of a record in insertion order. Setting an existing key replaces its value in place.
//
// Warning: lookups are linear - only meant for the handful of annotations a record carries.
type fields []field

// Append adds the given key-value pairs. A trailing key without value is set to "<missing>".
func (f *fields) Append(kvs ...interface{}) {
	f.Grow((len(kvs) + 1) / 2)
	for i := 0; i+1 < len(kvs); i += 2 {
		f.Set(toString(kvs[i]), kvs[i+1])
	}
	if len(kvs)%2 == 1 {
		f.Set(toString(kvs[len(kvs)-1]), "<missing>")
	}
}

func (f *fields) Set(key string, val interface{}) {
	for i := range *f {
		if (*f)[i].key == key {
			(*f)[i].val = val
			return
		}
	}
	*f = append(*f, field{key: key, val: val})
}

func (f fields) Get(key string) (interface{}, bool) {
	for _, fd := range f {
		if fd.key == key {
			return fd.val, true
		}
	}
	return nil, false
}

func (f *fields) Grow(n int) {
	if len(*f)+n > cap(*f) {
		grown := make(fields, len(*f), len(*f)+n)
		copy(grown, *f)
		*f = grown
	}
}

func toString(val interface{}) string {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}
