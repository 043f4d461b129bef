package lang

import (
	"strings"

	"github.com/coursekit/video-api/pkg/errors"
)

// iso6392to1 maps ISO-639-2 three-letter codes to ISO-639-1. Languages with
// distinct bibliographic and terminological codes carry both entries (fre/fra,
// ger/deu and so on) because platforms are not consistent about which variant
// they return.
var iso6392to1 = map[string]string{
	"afr": "af",
	"alb": "sq", "sqi": "sq",
	"amh": "am",
	"ara": "ar",
	"arm": "hy", "hye": "hy",
	"aze": "az",
	"baq": "eu", "eus": "eu",
	"bel": "be",
	"ben": "bn",
	"bos": "bs",
	"bre": "br",
	"bul": "bg",
	"bur": "my", "mya": "my",
	"cat": "ca",
	"chi": "zh", "zho": "zh",
	"cze": "cs", "ces": "cs",
	"dan": "da",
	"dut": "nl", "nld": "nl",
	"eng": "en",
	"epo": "eo",
	"est": "et",
	"fin": "fi",
	"fre": "fr", "fra": "fr",
	"geo": "ka", "kat": "ka",
	"ger": "de", "deu": "de",
	"gle": "ga",
	"glg": "gl",
	"gre": "el", "ell": "el",
	"guj": "gu",
	"hau": "ha",
	"heb": "he",
	"hin": "hi",
	"hrv": "hr",
	"hun": "hu",
	"ice": "is", "isl": "is",
	"ind": "id",
	"ita": "it",
	"jpn": "ja",
	"kan": "kn",
	"kaz": "kk",
	"khm": "km",
	"kor": "ko",
	"kur": "ku",
	"lav": "lv",
	"lit": "lt",
	"mac": "mk", "mkd": "mk",
	"mal": "ml",
	"mar": "mr",
	"may": "ms", "msa": "ms",
	"mon": "mn",
	"nep": "ne",
	"nor": "no",
	"pan": "pa",
	"per": "fa", "fas": "fa",
	"pol": "pl",
	"por": "pt",
	"pus": "ps",
	"rum": "ro", "ron": "ro",
	"rus": "ru",
	"sin": "si",
	"slo": "sk", "slk": "sk",
	"slv": "sl",
	"spa": "es",
	"srp": "sr",
	"swa": "sw",
	"swe": "sv",
	"tam": "ta",
	"tel": "te",
	"tgl": "tl",
	"tha": "th",
	"ton": "to",
	"tur": "tr",
	"ukr": "uk",
	"urd": "ur",
	"uzb": "uz",
	"vie": "vi",
	"wel": "cy", "cym": "cy",
	"yor": "yo",
	"zul": "zu",
}

// ToISO6391 converts an ISO-639-2 three-letter code to its two-letter
// equivalent. Two-letter input is passed through unchanged. A code with no
// known mapping is a reportable condition, not a silent drop.
func ToISO6391(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 2 {
		return code, nil
	}
	if two, ok := iso6392to1[code]; ok {
		return two, nil
	}
	return "", errors.LanguageConversionError(code)
}
