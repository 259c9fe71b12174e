package deepl

import (
	"fmt"
	"strings"
)

// Lang is a language code accepted by the translation endpoints.
type Lang string

const (
	LangBG   Lang = "BG"
	LangCS   Lang = "CS"
	LangDA   Lang = "DA"
	LangDE   Lang = "DE"
	LangEL   Lang = "EL"
	LangEN   Lang = "EN"
	LangENGB Lang = "EN-GB"
	LangENUS Lang = "EN-US"
	LangES   Lang = "ES"
	LangET   Lang = "ET"
	LangFI   Lang = "FI"
	LangFR   Lang = "FR"
	LangHU   Lang = "HU"
	LangID   Lang = "ID"
	LangIT   Lang = "IT"
	LangJA   Lang = "JA"
	LangLT   Lang = "LT"
	LangLV   Lang = "LV"
	LangNL   Lang = "NL"
	LangPL   Lang = "PL"
	LangPT   Lang = "PT"
	LangPTBR Lang = "PT-BR"
	LangPTPT Lang = "PT-PT"
	LangRO   Lang = "RO"
	LangRU   Lang = "RU"
	LangSK   Lang = "SK"
	LangSL   Lang = "SL"
	LangSV   Lang = "SV"
	LangTR   Lang = "TR"
	LangUK   Lang = "UK"
	LangZH   Lang = "ZH"
)

var langNames = map[Lang]string{
	LangBG:   "Bulgarian",
	LangCS:   "Czech",
	LangDA:   "Danish",
	LangDE:   "German",
	LangEL:   "Greek",
	LangEN:   "English (unspecified variant)",
	LangENGB: "English (British)",
	LangENUS: "English (American)",
	LangES:   "Spanish",
	LangET:   "Estonian",
	LangFI:   "Finnish",
	LangFR:   "French",
	LangHU:   "Hungarian",
	LangID:   "Indonesian",
	LangIT:   "Italian",
	LangJA:   "Japanese",
	LangLT:   "Lithuanian",
	LangLV:   "Latvian",
	LangNL:   "Dutch",
	LangPL:   "Polish",
	LangPT:   "Portuguese (all varieties mixed)",
	LangPTBR: "Portuguese (Brazilian)",
	LangPTPT: "Portuguese (excluding Brazilian)",
	LangRO:   "Romanian",
	LangRU:   "Russian",
	LangSK:   "Slovak",
	LangSL:   "Slovenian",
	LangSV:   "Swedish",
	LangTR:   "Turkish",
	LangUK:   "Ukrainian",
	LangZH:   "Chinese",
}

// ParseLang converts a code such as "DE" or "en-gb" into a Lang.
func ParseLang(s string) (Lang, error) {
	l := Lang(strings.ToUpper(s))
	if _, ok := langNames[l]; !ok {
		return "", fmt.Errorf("invalid language code %q", s)
	}
	return l, nil
}

// Description returns the human-readable language name for the code.
func (l Lang) Description() string {
	return langNames[l]
}

func (l Lang) String() string {
	return string(l)
}

// LangType selects which side of a language pair to list.
type LangType string

const (
	SourceLanguages LangType = "source"
	TargetLanguages LangType = "target"
)

// GlossaryLang is a language code accepted by the glossary endpoints.
// Glossaries only distinguish base languages, so the codes are lowercase
// two-letter tags with no regional variants.
type GlossaryLang string

const (
	GlossaryAR GlossaryLang = "ar"
	GlossaryBG GlossaryLang = "bg"
	GlossaryCS GlossaryLang = "cs"
	GlossaryDA GlossaryLang = "da"
	GlossaryDE GlossaryLang = "de"
	GlossaryEL GlossaryLang = "el"
	GlossaryEN GlossaryLang = "en"
	GlossaryES GlossaryLang = "es"
	GlossaryET GlossaryLang = "et"
	GlossaryFI GlossaryLang = "fi"
	GlossaryFR GlossaryLang = "fr"
	GlossaryHE GlossaryLang = "he"
	GlossaryHU GlossaryLang = "hu"
	GlossaryID GlossaryLang = "id"
	GlossaryIT GlossaryLang = "it"
	GlossaryJA GlossaryLang = "ja"
	GlossaryKO GlossaryLang = "ko"
	GlossaryLT GlossaryLang = "lt"
	GlossaryLV GlossaryLang = "lv"
	GlossaryNB GlossaryLang = "nb"
	GlossaryNL GlossaryLang = "nl"
	GlossaryPL GlossaryLang = "pl"
	GlossaryPT GlossaryLang = "pt"
	GlossaryRO GlossaryLang = "ro"
	GlossaryRU GlossaryLang = "ru"
	GlossarySK GlossaryLang = "sk"
	GlossarySL GlossaryLang = "sl"
	GlossarySV GlossaryLang = "sv"
	GlossaryTH GlossaryLang = "th"
	GlossaryTR GlossaryLang = "tr"
	GlossaryUK GlossaryLang = "uk"
	GlossaryVI GlossaryLang = "vi"
	GlossaryZH GlossaryLang = "zh"
)

var glossaryLangs = map[GlossaryLang]struct{}{
	GlossaryAR: {}, GlossaryBG: {}, GlossaryCS: {}, GlossaryDA: {},
	GlossaryDE: {}, GlossaryEL: {}, GlossaryEN: {}, GlossaryES: {},
	GlossaryET: {}, GlossaryFI: {}, GlossaryFR: {}, GlossaryHE: {},
	GlossaryHU: {}, GlossaryID: {}, GlossaryIT: {}, GlossaryJA: {},
	GlossaryKO: {}, GlossaryLT: {}, GlossaryLV: {}, GlossaryNB: {},
	GlossaryNL: {}, GlossaryPL: {}, GlossaryPT: {}, GlossaryRO: {},
	GlossaryRU: {}, GlossarySK: {}, GlossarySL: {}, GlossarySV: {},
	GlossaryTH: {}, GlossaryTR: {}, GlossaryUK: {}, GlossaryVI: {},
	GlossaryZH: {},
}

// ParseGlossaryLang converts a base language tag such as "en" into a
// GlossaryLang.
func ParseGlossaryLang(s string) (GlossaryLang, error) {
	l := GlossaryLang(strings.ToLower(s))
	if _, ok := glossaryLangs[l]; !ok {
		return "", fmt.Errorf("invalid glossary language code %q", s)
	}
	return l, nil
}

func (l GlossaryLang) String() string {
	return string(l)
}
