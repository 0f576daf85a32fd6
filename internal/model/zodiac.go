package model

// ZodiacSign enumerates the twelve signs.
type ZodiacSign string

const (
	SignAries       ZodiacSign = "aries"
	SignTaurus      ZodiacSign = "taurus"
	SignGemini      ZodiacSign = "gemini"
	SignCancer      ZodiacSign = "cancer"
	SignLeo         ZodiacSign = "leo"
	SignVirgo       ZodiacSign = "virgo"
	SignLibra       ZodiacSign = "libra"
	SignScorpio     ZodiacSign = "scorpio"
	SignSagittarius ZodiacSign = "sagittarius"
	SignCapricorn   ZodiacSign = "capricorn"
	SignAquarius    ZodiacSign = "aquarius"
	SignPisces      ZodiacSign = "pisces"
)

// ZodiacSigns lists all valid signs in calendar order.
var ZodiacSigns = []ZodiacSign{
	SignAries, SignTaurus, SignGemini, SignCancer,
	SignLeo, SignVirgo, SignLibra, SignScorpio,
	SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
}

// Valid reports whether s is one of the twelve signs. Matching is
// case-sensitive, same as the stored values.
func (s ZodiacSign) Valid() bool {
	for _, sign := range ZodiacSigns {
		if s == sign {
			return true
		}
	}
	return false
}
