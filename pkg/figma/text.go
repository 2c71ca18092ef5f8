package figma

import "encoding/json"

type TextCase string

const (
	TextCaseOriginal        TextCase = "ORIGINAL"
	TextCaseUpper           TextCase = "UPPER"
	TextCaseLower           TextCase = "LOWER"
	TextCaseTitle           TextCase = "TITLE"
	TextCaseSmallCaps       TextCase = "SMALL_CAPS"
	TextCaseSmallCapsForced TextCase = "SMALL_CAPS_FORCED"
)

type TextDecoration string

const (
	TextDecorationNone          TextDecoration = "NONE"
	TextDecorationStrikethrough TextDecoration = "STRIKETHROUGH"
	TextDecorationUnderline     TextDecoration = "UNDERLINE"
)

type TextAutoResize string

const (
	TextAutoResizeNone           TextAutoResize = "NONE"
	TextAutoResizeHeight         TextAutoResize = "HEIGHT"
	TextAutoResizeWidthAndHeight TextAutoResize = "WIDTH_AND_HEIGHT"
	TextAutoResizeTruncate       TextAutoResize = "TRUNCATE"
)

type TextTruncation string

const (
	TextTruncationDisabled TextTruncation = "DISABLED"
	TextTruncationEnding   TextTruncation = "ENDING"
)

type TextAlignHorizontal string

const (
	TextAlignLeft      TextAlignHorizontal = "LEFT"
	TextAlignRight     TextAlignHorizontal = "RIGHT"
	TextAlignCenter    TextAlignHorizontal = "CENTER"
	TextAlignJustified TextAlignHorizontal = "JUSTIFIED"
)

// TypeStyle represents the text styling properties of a TEXT node.
// Run-level overrides are not modelled; the node-wide style applies to all characters.
type TypeStyle struct {
	FontFamily                string              `json:"fontFamily"`
	FontPostScriptName        string              `json:"fontPostScriptName,omitempty"`
	Italic                    bool                `json:"italic,omitempty"`
	FontWeight                float64             `json:"fontWeight"`
	FontSize                  float64             `json:"fontSize"`
	TextCase                  TextCase            `json:"textCase,omitempty"`
	TextDecoration            TextDecoration      `json:"textDecoration,omitempty"`
	TextAutoResize            TextAutoResize      `json:"textAutoResize,omitempty"`
	TextTruncation            TextTruncation      `json:"textTruncation,omitempty"`
	MaxLines                  *float64            `json:"maxLines,omitempty"`
	TextAlignHorizontal       TextAlignHorizontal `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical         string              `json:"textAlignVertical,omitempty"`
	LetterSpacing             float64             `json:"letterSpacing"`
	LineHeightPercentFontSize float64             `json:"lineHeightPercentFontSize"`
	Fills                     []Paint             `json:"fills,omitempty"`
}

// UnmarshalJSON applies the document defaults: a missing line height is 100% of the font size.
func (s *TypeStyle) UnmarshalJSON(data []byte) error {
	type alias TypeStyle
	a := alias{LineHeightPercentFontSize: 100}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = TypeStyle(a)
	return nil
}

// LineHeight returns the unitless CSS line height. A zero percentage is read as 1.
func (s TypeStyle) LineHeight() float64 {
	if s.LineHeightPercentFontSize == 0 {
		return 1
	}
	return s.LineHeightPercentFontSize / 100
}
