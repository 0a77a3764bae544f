package preset

import "testing"

func TestDefaultVocabularyCoversScale(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		desc, ok := defaultVocabulary[level]
		if !ok {
			t.Errorf("no default description for level %d", level)
			continue
		}
		if desc == "" {
			t.Errorf("empty default description for level %d", level)
		}
	}
	if len(defaultVocabulary) != MaxLevel-MinLevel+1 {
		t.Errorf("vocabulary has %d entries, want %d", len(defaultVocabulary), MaxLevel-MinLevel+1)
	}
}
