package sentiment

// Built-in polarity lexicon. Values follow the AFINN convention of integer
// polarities in [-5, 5]. The set skews toward the vocabulary of journaling
// and community-event copy; deployments can extend or override entries with
// a JSON lexicon file (see Analyzer.LoadLexiconFile).
var defaultLexicon = map[string]float64{
	// strong positive
	"amazing":     4,
	"awesome":     4,
	"brilliant":   4,
	"ecstatic":    5,
	"excellent":   4,
	"fantastic":   4,
	"joyful":      4,
	"outstanding": 5,
	"thrilled":    5,
	"wonderful":   4,

	// positive
	"accomplished": 3,
	"appreciate":   3,
	"beautiful":    3,
	"calm":         2,
	"cheerful":     3,
	"comfortable":  2,
	"confident":    3,
	"connected":    2,
	"encouraged":   3,
	"energized":    3,
	"enjoy":        3,
	"enjoyed":      3,
	"excited":      3,
	"fun":          3,
	"glad":         3,
	"grateful":     3,
	"happy":        3,
	"healthy":      2,
	"helpful":      2,
	"hope":         2,
	"hopeful":      3,
	"inspired":     3,
	"kind":         2,
	"laugh":        3,
	"laughed":      3,
	"love":         3,
	"loved":        3,
	"motivated":    3,
	"optimistic":   3,
	"peaceful":     3,
	"positive":     2,
	"proud":        3,
	"refreshed":    2,
	"relaxed":      2,
	"relieved":     2,
	"rested":       2,
	"safe":         2,
	"satisfied":    2,
	"smile":        2,
	"strong":       2,
	"supported":    2,
	"thankful":     3,
	"welcome":      2,
	"well":         2,

	// mild positive
	"better": 1,
	"fine":   1,
	"good":   3,
	"nice":   2,
	"okay":   1,
	"steady": 1,

	// mild negative
	"bored":   -1,
	"meh":     -1,
	"tired":   -1,
	"uneasy":  -1,
	"unsure":  -1,
	"worse":   -2,

	// negative
	"afraid":      -3,
	"alone":       -2,
	"angry":       -3,
	"annoyed":     -2,
	"anxious":     -3,
	"ashamed":     -3,
	"bad":         -3,
	"cry":         -2,
	"cried":       -2,
	"difficult":   -2,
	"disappointed": -3,
	"discouraged": -3,
	"down":        -2,
	"drained":     -2,
	"embarrassed": -2,
	"empty":       -2,
	"exhausted":   -2,
	"fear":        -2,
	"frightened":  -3,
	"frustrated":  -3,
	"guilty":      -3,
	"hard":        -1,
	"hate":        -3,
	"hated":       -3,
	"hurt":        -2,
	"insecure":    -2,
	"irritated":   -2,
	"isolated":    -3,
	"lonely":      -3,
	"lost":        -2,
	"nervous":     -2,
	"numb":        -2,
	"overwhelmed": -3,
	"pain":        -2,
	"painful":     -2,
	"panic":       -3,
	"regret":      -2,
	"restless":    -2,
	"sad":         -2,
	"scared":      -2,
	"sick":        -2,
	"sleepless":   -2,
	"stress":      -2,
	"stressed":    -2,
	"struggle":    -2,
	"struggling":  -2,
	"stuck":       -2,
	"unhappy":     -2,
	"upset":       -2,
	"worried":     -3,
	"worry":       -3,

	// strong negative
	"awful":      -4,
	"depressed":  -4,
	"despair":    -4,
	"devastated": -5,
	"grief":      -4,
	"helpless":   -4,
	"hopeless":   -4,
	"miserable":  -4,
	"terrible":   -4,
	"terrified":  -4,
	"worthless":  -4,
}

// negators flip the polarity of the token that follows them.
var negators = map[string]bool{
	"no":        true,
	"not":       true,
	"never":     true,
	"neither":   true,
	"nor":       true,
	"without":   true,
	"hardly":    true,
	"barely":    true,
	"cannot":    true,
	"cant":      true,
	"can't":     true,
	"dont":      true,
	"don't":     true,
	"didnt":     true,
	"didn't":    true,
	"doesnt":    true,
	"doesn't":   true,
	"isnt":      true,
	"isn't":     true,
	"arent":     true,
	"aren't":    true,
	"wasnt":     true,
	"wasn't":    true,
	"werent":    true,
	"weren't":   true,
	"wont":      true,
	"won't":     true,
	"wouldnt":   true,
	"wouldn't":  true,
	"couldnt":   true,
	"couldn't":  true,
	"shouldnt":  true,
	"shouldn't": true,
}
