package transaction

import "encoding/json"

// nullable tells an absent JSON field apart from an explicit null, so PATCH
// bodies can clear a value as well as set it.
type nullable[T any] struct {
	set   bool
	value *T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.set = true

	if string(b) == "null" {
		n.value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	n.value = &v

	return nil
}

// apply overwrites dst when the field was present in the body.
func (n nullable[T]) apply(dst **T) {
	if n.set {
		*dst = n.value
	}
}
