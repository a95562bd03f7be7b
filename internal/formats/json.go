package formats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"toonbench/toon"
)

// JSONStrategy selects how JSON output is laid out. Layout is the whole
// point here: each strategy tokenizes differently.
type JSONStrategy string

const (
	// JSONPretty is standard two-space indented JSON.
	JSONPretty JSONStrategy = "pretty"
	// JSONCompact removes all optional whitespace.
	JSONCompact JSONStrategy = "compact"
	// JSONStringified is compact JSON wrapped in a JSON string, the shape
	// it takes when embedded in a prompt.
	JSONStringified JSONStrategy = "stringified"
	// JSONMinimal is compact JSON without HTML escaping.
	JSONMinimal JSONStrategy = "minimal"
)

// AllJSONStrategies returns every supported strategy.
func AllJSONStrategies() []JSONStrategy {
	return []JSONStrategy{JSONPretty, JSONCompact, JSONStringified, JSONMinimal}
}

// ParseJSONStrategy resolves a strategy name, case-insensitively.
func ParseJSONStrategy(value string) (JSONStrategy, error) {
	switch JSONStrategy(strings.ToLower(strings.TrimSpace(value))) {
	case JSONPretty:
		return JSONPretty, nil
	case JSONCompact:
		return JSONCompact, nil
	case JSONStringified:
		return JSONStringified, nil
	case JSONMinimal:
		return JSONMinimal, nil
	}
	return "", fmt.Errorf("formats: invalid JSON strategy %q, must be one of %v", value, AllJSONStrategies())
}

var (
	prettyConfig  = jsoniter.Config{IndentionStep: 2, EscapeHTML: true}.Froze()
	compactConfig = jsoniter.Config{EscapeHTML: true}.Froze()
	minimalConfig = jsoniter.Config{EscapeHTML: false}.Froze()
)

// MarshalDataset serializes a dataset as a JSON array of objects, writing
// fields in record order via the streaming API so insertion order survives.
func MarshalDataset(ds toon.Dataset, strategy JSONStrategy) (string, error) {
	cfg := compactConfig
	switch strategy {
	case JSONPretty:
		cfg = prettyConfig
	case JSONMinimal:
		cfg = minimalConfig
	}

	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	writeDataset(stream, ds)
	if stream.Error != nil {
		return "", fmt.Errorf("formats: marshal json: %w", stream.Error)
	}
	out := string(stream.Buffer())

	if strategy == JSONStringified {
		quoted, err := compactConfig.MarshalToString(out)
		if err != nil {
			return "", fmt.Errorf("formats: stringify json: %w", err)
		}
		return quoted, nil
	}
	return out, nil
}

func writeDataset(stream *jsoniter.Stream, ds toon.Dataset) {
	stream.WriteArrayStart()
	for i, rec := range ds {
		if i > 0 {
			stream.WriteMore()
		}
		writeRecord(stream, rec)
	}
	stream.WriteArrayEnd()
}

func writeRecord(stream *jsoniter.Stream, rec toon.Record) {
	stream.WriteObjectStart()
	for i, f := range rec {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(f.Key)
		writeValue(stream, f.Value)
	}
	stream.WriteObjectEnd()
}

func writeValue(stream *jsoniter.Stream, v toon.Value) {
	switch v.Kind() {
	case toon.KindString:
		s, _ := v.AsStr()
		stream.WriteString(s)
	case toon.KindInt:
		n, _ := v.AsInt()
		stream.WriteInt64(n)
	case toon.KindBool:
		b, _ := v.AsBool()
		stream.WriteBool(b)
	case toon.KindList:
		elems, _ := v.AsList()
		stream.WriteArrayStart()
		for i, elem := range elems {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteString(elem)
		}
		stream.WriteArrayEnd()
	case toon.KindObject:
		obj, _ := v.AsObj()
		writeRecord(stream, obj)
	}
}

// UnmarshalDataset parses JSON text into a dataset, preserving document key
// order through the iterator API. A top-level object is wrapped as a
// single-record dataset.
//
// The value model has no float variant: whole non-negative numbers become
// integers, every other number keeps its literal text as a string.
func UnmarshalDataset(text string) (toon.Dataset, error) {
	iter := jsoniter.ParseString(compactConfig, text)

	var ds toon.Dataset
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		ds = toon.Dataset{readRecord(iter)}
	case jsoniter.ArrayValue:
		ds = toon.Dataset{}
		for iter.ReadArray() {
			ds = append(ds, readRecord(iter))
		}
	default:
		return nil, fmt.Errorf("formats: unmarshal json: expected object or array")
	}

	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("formats: unmarshal json: %w", iter.Error)
	}
	return ds, nil
}

func readRecord(iter *jsoniter.Iterator) toon.Record {
	var rec toon.Record
	for field := iter.ReadObject(); field != ""; field = iter.ReadObject() {
		rec = append(rec, toon.Field{Key: field, Value: readValue(iter)})
	}
	return rec
}

func readValue(iter *jsoniter.Iterator) toon.Value {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return toon.Str(iter.ReadString())
	case jsoniter.BoolValue:
		return toon.Bool(iter.ReadBool())
	case jsoniter.NumberValue:
		num := iter.ReadNumber()
		if n, err := strconv.ParseInt(num.String(), 10, 64); err == nil && n >= 0 {
			return toon.Int(n)
		}
		return toon.Str(num.String())
	case jsoniter.ArrayValue:
		var elems []string
		for iter.ReadArray() {
			elems = append(elems, readListElement(iter))
		}
		return toon.List(elems...)
	case jsoniter.ObjectValue:
		return toon.Obj(readRecord(iter)...)
	default:
		// null and anything unrecognized degrade to an empty string.
		iter.Skip()
		return toon.Str("")
	}
}

// readListElement stringifies one array element. Lists hold plain strings,
// so non-string scalars keep their literal JSON text.
func readListElement(iter *jsoniter.Iterator) string {
	if iter.WhatIsNext() == jsoniter.StringValue {
		return iter.ReadString()
	}
	return string(iter.SkipAndReturnBytes())
}
