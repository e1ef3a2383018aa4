package core

import (
	"fmt"

	"github.com/tsawler/pdftext/internal/filters"
)

// Decode decodes the stream data according to the Filter(s) specified
// in the stream dictionary. It supports FlateDecode, ASCIIHexDecode,
// ASCII85Decode, RunLengthDecode, CCITTFaxDecode, and filter chains.
// The decoded result is cached.
func (s *Stream) Decode() ([]byte, error) {
	if s.decoded != nil {
		return s.decoded, nil
	}

	filterObj := s.Dict.Get("Filter")
	if filterObj == nil {
		s.decoded = s.Data
		return s.Data, nil
	}

	paramsObj := s.Dict.Get("DecodeParms")
	if paramsObj == nil {
		paramsObj = s.Dict.Get("DP")
	}

	// Single filter
	if filterName, ok := filterObj.(Name); ok {
		decoded, err := decodeWithFilter(s.Data, string(filterName), paramsObjToDict(paramsObj))
		if err != nil {
			return nil, err
		}
		s.decoded = decoded
		return decoded, nil
	}

	// Filter chain
	if filterArray, ok := filterObj.(Array); ok {
		data := s.Data
		for i, filter := range filterArray {
			filterName, ok := filter.(Name)
			if !ok {
				return nil, fmt.Errorf("filter %d is not a name: %T", i, filter)
			}

			var params Dict
			if paramsArray, ok := paramsObj.(Array); ok {
				if i < len(paramsArray) {
					params = paramsObjToDict(paramsArray[i])
				}
			} else {
				params = paramsObjToDict(paramsObj)
			}

			var err error
			data, err = decodeWithFilter(data, string(filterName), params)
			if err != nil {
				return nil, fmt.Errorf("filter %d (%s) failed: %w", i, filterName, err)
			}
		}
		s.decoded = data
		return data, nil
	}

	return nil, fmt.Errorf("invalid Filter type: %T", filterObj)
}

// SetData replaces the raw stream payload and drops any cached decoded
// form. Used after decryption.
func (s *Stream) SetData(data []byte) {
	s.Data = data
	s.decoded = nil
}

// decodeWithFilter applies a single decompression filter to data.
func decodeWithFilter(data []byte, filterName string, params Dict) ([]byte, error) {
	switch filterName {
	case "FlateDecode", "Fl":
		return filters.FlateDecode(data, dictToParams(params))

	case "ASCIIHexDecode", "AHx":
		return filters.ASCIIHexDecode(data)

	case "ASCII85Decode", "A85":
		return filters.ASCII85Decode(data)

	case "RunLengthDecode", "RL":
		return filters.RunLengthDecode(data)

	case "CCITTFaxDecode", "CCF":
		return filters.CCITTFaxDecode(data, dictToParams(params))

	case "LZWDecode", "LZW":
		return nil, fmt.Errorf("%w: LZWDecode filter", filters.ErrUnsupported)

	case "JBIG2Decode":
		return nil, fmt.Errorf("%w: JBIG2Decode filter", filters.ErrUnsupported)

	case "DCTDecode", "DCT", "JPXDecode":
		// Image codecs; the payload is opaque to text extraction.
		return data, nil

	case "Crypt":
		// Identity crypt filters pass through; anything else was
		// handled during object loading.
		return data, nil

	default:
		return nil, fmt.Errorf("%w: filter %s", filters.ErrUnsupported, filterName)
	}
}

// paramsObjToDict converts a DecodeParms object to a Dict. Null and
// non-dictionary values yield nil.
func paramsObjToDict(obj Object) Dict {
	if dict, ok := obj.(Dict); ok {
		return dict
	}
	return nil
}

// dictToParams converts a core.Dict to filters.Params, translating PDF
// object types to Go primitives.
func dictToParams(dict Dict) filters.Params {
	if dict == nil {
		return nil
	}

	params := make(filters.Params)
	for k, v := range dict {
		switch obj := v.(type) {
		case Int:
			params[k] = int(obj)
		case Real:
			params[k] = float64(obj)
		case Bool:
			params[k] = bool(obj)
		case String:
			params[k] = string(obj)
		case Name:
			params[k] = string(obj)
		default:
			params[k] = v
		}
	}
	return params
}
