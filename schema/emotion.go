package schema

import (
	"strings"

	"golang.org/x/text/cases"
)

// Emotion is the closed set of emotion labels found in the raw data.
// Each label owns exactly one field of the Emotions vector.
type Emotion int

const (
	EmotionNone Emotion = iota
	EmotionJoy
	EmotionSadness
	EmotionFear
	EmotionDisgust
	EmotionAnger
	EmotionHappy
	EmotionCalm
)

// EmotionKeys lists the emotion fields in storage order
var EmotionKeys = []string{"joy", "sadness", "fear", "disgust", "anger", "happy", "calm", "none"}

var emotionNames = map[Emotion]string{
	EmotionNone:    "none",
	EmotionJoy:     "joy",
	EmotionSadness: "sadness",
	EmotionFear:    "fear",
	EmotionDisgust: "disgust",
	EmotionAnger:   "anger",
	EmotionHappy:   "happy",
	EmotionCalm:    "calm",
}

var emotionByName = func() map[string]Emotion {
	m := make(map[string]Emotion, len(emotionNames))
	for e, name := range emotionNames {
		m[name] = e
	}
	return m
}()

// ParseEmotion matches a raw label case-insensitively.
// Empty or unrecognized labels map to EmotionNone.
func ParseEmotion(label string) Emotion {
	folded := cases.Fold().String(strings.TrimSpace(label))
	if e, ok := emotionByName[folded]; ok {
		return e
	}
	return EmotionNone
}

func (e Emotion) String() string {
	if name, ok := emotionNames[e]; ok {
		return name
	}
	return emotionNames[EmotionNone]
}

// Vector returns the one-hot intensity vector for the emotion
func (e Emotion) Vector() Emotions {
	var v Emotions
	switch e {
	case EmotionJoy:
		v.Joy = 1
	case EmotionSadness:
		v.Sadness = 1
	case EmotionFear:
		v.Fear = 1
	case EmotionDisgust:
		v.Disgust = 1
	case EmotionAnger:
		v.Anger = 1
	case EmotionHappy:
		v.Happy = 1
	case EmotionCalm:
		v.Calm = 1
	default:
		v.None = 1
	}
	return v
}
