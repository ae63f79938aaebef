package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// TitleMap maps title ids to titles and remembers the order in which ids were
// first put. It marshals to a JSON object whose keys follow that order.
type TitleMap struct {
	ids    []string
	titles map[string]*Title
}

func NewTitleMap() *TitleMap {
	return &TitleMap{ids: make([]string, 0), titles: make(map[string]*Title)}
}

// Put stores title under title.ID. Putting an id that already exists replaces the
// stored title but keeps its original position.
func (titleMap *TitleMap) Put(title Title) {
	if titleMap.titles == nil {
		titleMap.titles = make(map[string]*Title)
	}
	if _, ok := titleMap.titles[title.ID]; !ok {
		titleMap.ids = append(titleMap.ids, title.ID)
	}
	titleMap.titles[title.ID] = &title
}

func (titleMap *TitleMap) Get(id string) (*Title, bool) {
	title, ok := titleMap.titles[id]
	return title, ok
}

func (titleMap *TitleMap) Len() int {
	return len(titleMap.ids)
}

func (titleMap *TitleMap) IDs() []string {
	ids := make([]string, len(titleMap.ids))
	copy(ids, titleMap.ids)
	return ids
}

// Titles returns the stored titles in order. The pointers alias the map, so
// assigning Chapters through them updates the map.
func (titleMap *TitleMap) Titles() []*Title {
	titles := make([]*Title, 0, len(titleMap.ids))
	for _, id := range titleMap.ids {
		titles = append(titles, titleMap.titles[id])
	}
	return titles
}

func (titleMap TitleMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := newUnescapedEncoder(&buf)

	buf.WriteByte('{')
	for i, id := range titleMap.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encoder.Encode(id); err != nil {
			return nil, fmt.Errorf("error on encoding title id='%s': %v", id, err)
		}
		buf.WriteByte(':')
		if err := encoder.Encode(titleMap.titles[id]); err != nil {
			return nil, fmt.Errorf("error on encoding title id='%s': %v", id, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (titleMap *TitleMap) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("error on reading title map: %v", err)
	}
	if token == nil {
		*titleMap = TitleMap{}
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected title map object, got %v", token)
	}

	decoded := NewTitleMap()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("error on reading title id: %v", err)
		}
		id, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("expected title id string, got %v", keyToken)
		}
		var title Title
		if err := decoder.Decode(&title); err != nil {
			return fmt.Errorf("error on decoding title id='%s': %v", id, err)
		}
		title.ID = id
		decoded.Put(title)
	}
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("error on closing title map: %v", err)
	}
	*titleMap = *decoded
	return nil
}

type sectionFields Section

type listedSection struct {
	DisplayName string  `json:"display_name"`
	Number      string  `json:"number,omitempty"`
	Name        string  `json:"name,omitempty"`
	URL         string  `json:"url"`
	LastUpdated *string `json:"last_updated"`
}

func (section Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := newUnescapedEncoder(&buf)
	var err error
	if section.ContentFetched {
		err = encoder.Encode(sectionFields(section))
	} else {
		err = encoder.Encode(listedSection{
			DisplayName: section.DisplayName,
			Number:      section.Number,
			Name:        section.Name,
			URL:         section.URL,
			LastUpdated: section.LastUpdated,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("error on encoding section url='%s': %v", section.URL, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON sets ContentFetched when the content key is present, even as null.
func (section *Section) UnmarshalJSON(data []byte) error {
	var fields sectionFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("error on decoding section: %v", err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("error on decoding section keys: %v", err)
	}
	_, fields.ContentFetched = keys["content"]
	*section = Section(fields)
	return nil
}

func newUnescapedEncoder(w io.Writer) *json.Encoder {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder
}
