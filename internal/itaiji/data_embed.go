package itaiji

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed data/itaiji_dic.yaml
var itaijiDicYAML []byte

type itaijiDicFile struct {
	Itaiji map[string]string `yaml:"itaiji"`
}

func loadItaijiTable() (map[rune]rune, error) {
	var f itaijiDicFile
	if err := yaml.Unmarshal(itaijiDicYAML, &f); err != nil {
		return nil, err
	}

	table := make(map[rune]rune, len(f.Itaiji))
	for src, dst := range f.Itaiji {
		srcRunes := []rune(src)
		dstRunes := []rune(dst)
		if len(srcRunes) != 1 || len(dstRunes) != 1 {
			continue
		}
		table[srcRunes[0]] = dstRunes[0]
	}
	return table, nil
}
