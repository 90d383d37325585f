package dynamox

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AttrAs returns the attribute with the given name from the item,
// asserting it to type T.
func AttrAs[T types.AttributeValue](
	item map[string]types.AttributeValue,
	name string,
) (T, error) {
	v, ok := item[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("item does not contain the %q attribute", name)
	}

	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("the %q attribute has type %T, expected %T", name, v, zero)
	}

	return t, nil
}
