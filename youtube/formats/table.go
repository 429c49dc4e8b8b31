package formats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/ytget/ytinfo/internal/logger"
	"github.com/ytget/ytinfo/types"
)

// DefaultExt is the extension sentinel used until an encoding is resolved.
const DefaultExt = "mp4"

// BuiltinVersion identifies the built-in encoding table.
const BuiltinVersion = "builtin-2011"

var builtinEncodings = map[string]string{
	"5":  "320x240 H.263/MP3 Mono FLV",
	"13": "176x144 3GP/AMR Mono 3GP",
	"17": "176x144 3GP/AAC Mono 3GP",
	"18": "480x360/480x270 H.264/AAC Stereo MP4",
	"22": "1280x720 H.264/AAC Stereo MP4",
	"34": "320x240 H.264/AAC Stereo FLV",
	"35": "640x480/640x360 H.264/AAC Stereo FLV",
	"37": "1920x1080 H.264/AAC Stereo MP4",
	"43": "640x360 VP8/Vorbis Stereo MP4",
	"44": "854x480 VP8/Vorbis Stereo MP4",
	"45": "1280x720 VP8/Vorbis Stereo MP4",
}

var builtinPriority = []string{"37", "22", "45", "44", "35", "43", "18", "34", "5"}

// Table is a versioned set of known encodings plus the preference order used for
// automatic selection. Priority entries need not be described in Encodings.
type Table struct {
	Version   string            `json:"version"`
	Encodings map[string]string `json:"encodings"`
	Priority  []string          `json:"priority"`
}

// tableFile is the on-disk layout. Encodings are records rather than a map
// because viper folds map keys to lower case and splits them on dots.
type tableFile struct {
	Version   string `mapstructure:"version"`
	Encodings []struct {
		ID          string `mapstructure:"id"`
		Description string `mapstructure:"description"`
	} `mapstructure:"encodings"`
	Priority []string `mapstructure:"priority"`
}

// DefaultTable returns a fresh copy of the built-in table.
func DefaultTable() *Table {
	encodings := make(map[string]string, len(builtinEncodings))
	for id, desc := range builtinEncodings {
		encodings[id] = desc
	}
	return &Table{
		Version:   BuiltinVersion,
		Encodings: encodings,
		Priority:  append([]string(nil), builtinPriority...),
	}
}

// LoadTable reads a table from a yaml, json or toml file on fs. The format follows
// the file extension. Encodings are a list of {id, description} records; the first
// record of a repeated id wins. Priority entries missing from the encodings are logged.
func LoadTable(fs afero.Fs, path string) (*Table, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read encoding table %s: %w", path, err)
	}

	var file tableFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode encoding table %s: %w", path, err)
	}
	t := Table{
		Version:   file.Version,
		Encodings: make(map[string]string, len(file.Encodings)),
		Priority:  file.Priority,
	}
	for _, e := range file.Encodings {
		if _, seen := t.Encodings[e.ID]; !seen {
			t.Encodings[e.ID] = e.Description
		}
	}
	t.normalize()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("encoding table %s: %w", path, err)
	}

	log := logger.WithComponent(logger.ComponentFormat)
	if drift := t.Undescribed(); len(drift) > 0 {
		log.Warn("Priority lists encodings without a description", map[string]interface{}{
			"table":   path,
			"itags":   strings.Join(drift, ","),
			"version": t.Version,
		})
	}
	log.Debug("Loaded encoding table", map[string]interface{}{
		"table":     path,
		"version":   t.Version,
		"encodings": len(t.Encodings),
	})
	return &t, nil
}

func (t *Table) normalize() {
	encodings := make(map[string]string, len(t.Encodings))
	for id, desc := range t.Encodings {
		if id = normalizeID(id); id != "" {
			encodings[id] = strings.TrimSpace(desc)
		}
	}
	t.Encodings = encodings
	t.Priority = lo.Uniq(lo.Compact(lo.Map(t.Priority, func(id string, _ int) string {
		return normalizeID(id)
	})))
}

// Validate reports tables that cannot drive automatic selection.
func (t *Table) Validate() error {
	if len(t.Priority) == 0 {
		return fmt.Errorf("empty priority")
	}
	return nil
}

// Undescribed returns priority entries that have no description, in priority order.
func (t *Table) Undescribed() []string {
	return lo.Filter(t.Priority, func(id string, _ int) bool {
		return !t.Known(id)
	})
}

// Known reports whether id has a description.
func (t *Table) Known(id string) bool {
	_, ok := t.Encodings[id]
	return ok
}

// Describe returns the description of id.
func (t *Table) Describe(id string) (string, bool) {
	desc, ok := t.Encodings[id]
	return desc, ok
}

// Ext returns the file extension derived from the description of id.
func (t *Table) Ext(id string) (string, bool) {
	desc, ok := t.Encodings[id]
	if !ok {
		return "", false
	}
	return types.Encoding{ID: id, Description: desc}.Ext(), true
}

// List returns every described encoding ordered by identifier.
func (t *Table) List() []types.Encoding {
	ids := lo.Keys(t.Encodings)
	sort.Slice(ids, func(i, j int) bool { return lessID(ids[i], ids[j]) })
	return lo.Map(ids, func(id string, _ int) types.Encoding {
		return types.Encoding{ID: id, Description: t.Encodings[id]}
	})
}

// SelectBest applies the table priority to c.
func (t *Table) SelectBest(c *Catalog) (string, error) {
	return SelectBest(c, t.Priority)
}
