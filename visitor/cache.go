package visitor

import (
	"go/token"
	"reflect"
	"sync"

	"github.com/viant/xunsafe"
)

var structTypes = &typeCache{types: map[reflect.Type]*structType{}}

type (
	//structType holds xunsafe metadata with positions of exported fields
	structType struct {
		xStruct  *xunsafe.Struct
		exported []int
	}

	typeCache struct {
		types map[reflect.Type]*structType
		mux   sync.RWMutex
	}
)

func newStructType(rType reflect.Type) *structType {
	ret := &structType{xStruct: xunsafe.NewStruct(rType)}
	for i := range ret.xStruct.Fields {
		if token.IsExported(ret.xStruct.Fields[i].Name) {
			ret.exported = append(ret.exported, i)
		}
	}
	return ret
}

// lookup returns cached struct metadata, building it on first use
func (c *typeCache) lookup(rType reflect.Type) *structType {
	c.mux.RLock()
	ret, ok := c.types[rType]
	c.mux.RUnlock()
	if ok {
		return ret
	}
	ret = newStructType(rType)
	c.mux.Lock()
	defer c.mux.Unlock()
	if existing, ok := c.types[rType]; ok {
		return existing
	}
	c.types[rType] = ret
	return ret
}
