package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name gives a record pointer a random readable name, the same one every time
// it is asked about that pointer within a process. Two records printed as "v3"
// and "h3" are easy to confuse in a long dump; "CalmLizard" and "BoldOtter"
// are not.
//
// Names are never forgotten, so this leaks. Nothing calls it outside of debug
// output.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand. Making them nondeterministic
	// is a reminder that a name means nothing across runs.
	petname.NonDeterministicMode()
}

// Nil pointers, and nil itself, are all "Ø".
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
