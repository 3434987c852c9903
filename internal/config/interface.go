package config

import "context"

// Decoder is the interface for a format-specific declaration reader.
type Decoder interface {
	// Decode parses src and translates it into the format-agnostic model.
	// name is used for diagnostics only.
	Decode(ctx context.Context, name string, src []byte) (*Declaration, error)
}

// Encoder is the interface for a format-specific declaration writer.
type Encoder interface {
	// Encode renders the declaration. Decoding the result with the matching
	// Decoder must yield the same keys, kinds and values.
	Encode(decl *Declaration) ([]byte, error)
}
