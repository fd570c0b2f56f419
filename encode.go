package rentals

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// This file contains the text encoding of a collection.
//
// A collection is stored as a versioned envelope:
//
//	{"version": 2, "properties": [ {...}, {...} ]}
//
// The first version of the tool stored a bare JSON array of properties, with
// Portuguese access literals and no validation at all. Such data is still
// accepted by DecodeCollection and migrated on the fly; it is always written
// back in the current version.

// CollectionVersion is the version written by EncodeCollection.
const CollectionVersion = 2

//go:embed schema/collection.v2.json
var collectionSchemaSource string

var collectionSchema = jsonschema.MustCompileString("collection.v2.json", collectionSchemaSource)

type envelope struct {
	Version    int        `json:"version"`
	Properties []Property `json:"properties"`
}

// EncodeCollection encodes the properties in the current version.
func EncodeCollection(props []Property) ([]byte, error) {
	if props == nil {
		props = []Property{}
	}
	data, err := json.MarshalIndent(envelope{Version: CollectionVersion, Properties: props}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot encode collection: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeCollection decodes a collection in any supported version. Empty data
// is an empty collection.
func DecodeCollection(data []byte) ([]Property, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	var props []Property
	var err error
	switch data[0] {
	case '[':
		props, err = decodeLegacy(data)
	case '{':
		props, err = decodeEnvelope(data)
	default:
		err = fmt.Errorf("format error: expecting a JSON object or array")
	}
	if err != nil {
		return nil, err
	}
	if err := checkUniqueIDs(props); err != nil {
		return nil, err
	}
	return props, nil
}

func decodeEnvelope(data []byte) ([]Property, error) {
	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("format error: not a correct json: %w", err)
	}
	if header.Version != CollectionVersion {
		return nil, fmt.Errorf("format error: unsupported collection version %d", header.Version)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("format error: not a correct json: %w", err)
	}
	if err := collectionSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("format error: %w", err)
	}
	return env.Properties, nil
}

// legacyProperty is a record of the first version. Its field names are the
// same as Draft's.
type legacyProperty struct {
	ID string `json:"id"`
	Draft
}

// decodeLegacy migrates a bare array of version 1 records. Ratings are
// rounded and clamped since version 1 never enforced their ranges; records
// without an ID get a fresh one.
func decodeLegacy(data []byte) ([]Property, error) {
	var olds []legacyProperty
	if err := json.Unmarshal(data, &olds); err != nil {
		return nil, fmt.Errorf("format error in legacy collection: %w", err)
	}
	props := make([]Property, 0, len(olds))
	for i, old := range olds {
		base := NewProperty()
		if old.ID != "" {
			base.ID = old.ID
		}
		d := old.Draft
		d.Clamp()
		p := d.Merge(base)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("format error in legacy record #%d: %w", i+1, err)
		}
		props = append(props, p)
	}
	return props, nil
}

func checkUniqueIDs(props []Property) error {
	seen := make(map[string]struct{}, len(props))
	for _, p := range props {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("format error: property id %q is defined twice", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
