package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload.
var ErrNilPayload = errors.New("event has no payload")

// DecodePayload returns an event payload as T. In-process publishers hand
// over T or *T directly; payloads replayed from the dead-letter file arrive
// as raw JSON or generic maps and are decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case nil:
		return result, ErrNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, ErrNilPayload
		}
		return *v, nil
	case json.RawMessage:
		return result, decodeJSON(v, &result)
	case []byte:
		return result, decodeJSON(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayload, result, err)
	}
	return result, decodeJSON(data, &result)
}

func decodeJSON[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, *out, err)
	}
	return nil
}
