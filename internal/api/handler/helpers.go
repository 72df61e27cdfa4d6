package handler

import "encoding/json"

func orEmptyObject(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return json.RawMessage(`{}`)
	}
	return raw
}

func orEmptyArray(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return json.RawMessage(`[]`)
	}
	return raw
}
