package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object, rejecting unknown
// fields. Typed fields such as sqltypes.Address validate themselves here.
func (Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
