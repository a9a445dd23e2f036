// Package blocks implements the block-structured input contract. A blocks
// file is produced upstream by splitting normalized text on blank-line
// boundaries, dropping empty results, and assigning contiguous zero-based
// indices. This package loads and validates that shape; it never re-derives
// paragraph boundaries itself.
package blocks

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Block is one indexed paragraph of input text. Indices are zero-based,
// contiguous, and immutable once assigned; text is never empty or
// whitespace-only (guaranteed upstream, enforced by the record schema).
type Block struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// MalformedInputError reports input that is not block-structured.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// recordSchema validates a single block record. The index is optional (it is
// re-checked against the record's position when present); text is required
// and must be non-empty.
const recordSchema = `{
	"type": "object",
	"properties": {
		"index": {"type": "integer", "minimum": 0},
		"text": {"type": "string", "minLength": 1}
	},
	"required": ["text"]
}`

var blockSchema = jsonschema.MustCompileString("block.json", recordSchema)

// Load reads a blocks file and returns the ordered block sequence.
//
// Two encodings are accepted: JSON Lines (one record per line) and a single
// JSON array of records. Anything else, including a raw unstructured text
// stream, is rejected with MalformedInputError. A file with zero blocks is
// also malformed.
func Load(path string) ([]Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blocks file: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &MalformedInputError{Reason: "input is empty"}
	}

	var records []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("invalid JSON array: %v", err)}
		}
	case '{':
		records, err = scanLines(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, &MalformedInputError{Reason: "input is not block-structured (expected JSON Lines or a JSON array)"}
	}

	if len(records) == 0 {
		return nil, &MalformedInputError{Reason: "input contains zero blocks"}
	}

	out := make([]Block, 0, len(records))
	for i, raw := range records {
		blk, err := decodeRecord(i, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, blk)
	}
	return out, nil
}

// scanLines splits JSON Lines input into raw records, skipping blank lines.
func scanLines(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !json.Valid([]byte(line)) {
			return nil, &MalformedInputError{Reason: fmt.Sprintf("line %d is not valid JSON", lineNum)}
		}
		records = append(records, json.RawMessage(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan blocks file: %w", err)
	}
	return records, nil
}

// decodeRecord validates one raw record against the block schema and checks
// index contiguity before decoding it into a Block.
func decodeRecord(position int, raw json.RawMessage) (Block, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return Block{}, &MalformedInputError{Reason: fmt.Sprintf("record %d is not valid JSON: %v", position, err)}
	}
	if err := blockSchema.Validate(generic); err != nil {
		return Block{}, &MalformedInputError{Reason: fmt.Sprintf("record %d failed validation: %v", position, err)}
	}

	var blk Block
	blk.Index = -1
	if err := json.Unmarshal(raw, &blk); err != nil {
		return Block{}, &MalformedInputError{Reason: fmt.Sprintf("record %d failed to decode: %v", position, err)}
	}

	if blk.Index == -1 {
		blk.Index = position
	} else if blk.Index != position {
		return Block{}, &MalformedInputError{
			Reason: fmt.Sprintf("record %d carries index %d; block indices must be contiguous and zero-based", position, blk.Index),
		}
	}

	if strings.TrimSpace(blk.Text) == "" {
		return Block{}, &MalformedInputError{Reason: fmt.Sprintf("record %d has whitespace-only text", position)}
	}

	return blk, nil
}
