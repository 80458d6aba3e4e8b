// Package ingest turns structured message documents into sink records.
//
// The document format is a flat XML list:
//
//	<messages>
//	  <message list="errors">
//	    <property key="text" value="Value in attribute"/>
//	    <property key="id">value-in-contents</property>
//	  </message>
//	</messages>
//
// Each <message> appends one record to the channel named by its list
// attribute. Known property keys (text, html, id) set the matching record
// fields; every other key lands in the record's parameter bag. The value
// attribute wins over element content when both are present.
package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"crier/internal/msg"
)

type xmlDocument struct {
	XMLName  xml.Name     `xml:"messages"`
	Messages []xmlMessage `xml:"message"`
}

type xmlMessage struct {
	List       string        `xml:"list,attr"`
	Properties []xmlProperty `xml:"property"`
}

type xmlProperty struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
	Body  string `xml:",chardata"`
}

// Document reads one XML message document from r and appends its records to
// s in document order. A message naming a channel outside the fixed three
// fails the whole ingestion; records appended before the failure stay in the
// sink. Errors from the sink's fail-on-add hook propagate unchanged.
func Document(r io.Reader, s *msg.Sink) error {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("parse message document: %w", err)
	}
	fold := cases.Fold()
	for i, xm := range doc.Messages {
		ch, err := msg.ParseChannel(xm.List)
		if err != nil {
			return fmt.Errorf("message %d: %w", i+1, err)
		}
		record := &msg.Message{}
		for _, prop := range xm.Properties {
			key := fold.String(strings.TrimSpace(prop.Key))
			value := prop.Value
			if value == "" {
				value = strings.TrimSpace(prop.Body)
			}
			switch key {
			case "":
				continue
			case "text":
				record.Text = value
			case "html":
				record.HTML = value
			case "id":
				record.ID = value
			default:
				record.WithParam(key, value)
			}
		}
		if err := s.Add(ch, record); err != nil {
			return fmt.Errorf("message %d: %w", i+1, err)
		}
	}
	return nil
}

// File ingests a document from disk.
func File(path string, s *msg.Sink) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open message document: %w", err)
	}
	defer f.Close()
	if err := Document(f, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
