// Package lexicon holds the static keyword tables driving emotion and
// theme detection. Tables are ordered slices rather than maps: category
// order breaks score ties during ranking, so it must stay fixed.
package lexicon

// Category maps a label to its trigger keywords.
type Category struct {
	Name     string
	Keywords []string
}

// Table is an ordered list of categories. Treat as read-only.
type Table []Category

// Names returns the category labels in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// Emotions is the emotion detection table.
var Emotions = Table{
	{"joy", []string{"happy", "joy", "joyful", "glad", "cheerful", "delighted", "elated", "excited", "thrilled", "blissful", "ecstatic", "upbeat"}},
	{"gratitude", []string{"grateful", "thankful", "blessed", "appreciative", "fortunate"}},
	{"pride", []string{"proud", "accomplished", "achieved", "successful", "confident"}},
	{"calm", []string{"calm", "peace", "peaceful", "relaxed", "serene", "tranquil", "steady", "centered", "balanced"}},
	{"love", []string{"love", "loving", "affection", "care", "caring", "tender", "warm", "heart"}},
	{"hope", []string{"hope", "hopeful", "optimistic", "positive", "bright", "promising", "encouraged"}},
	{"stress", []string{"stress", "stressed", "pressure", "overwhelm", "overwhelmed", "tense", "strained", "burden", "hectic"}},
	{"anxiety", []string{"anxious", "anxiety", "worried", "nervous", "restless", "uneasy", "concerned", "apprehensive"}},
	{"sadness", []string{"sad", "down", "blue", "lonely", "melancholy", "gloomy", "dejected", "sorrowful", "grief"}},
	{"anger", []string{"angry", "mad", "frustrated", "irritated", "annoyed", "furious", "rage", "resentful"}},
	{"fear", []string{"afraid", "scared", "fear", "fearful", "terrified", "panic", "dread"}},
	{"disappointment", []string{"disappointed", "letdown", "discouraged", "disillusioned", "defeated"}},
	{"guilt", []string{"guilty", "shame", "ashamed", "regret", "remorse"}},
	{"confusion", []string{"confused", "lost", "uncertain", "unclear", "puzzled", "bewildered"}},
	{"tired", []string{"tired", "exhausted", "drained", "weary", "fatigue", "sleepy"}},
	{"energetic", []string{"energetic", "energized", "vibrant", "lively", "dynamic", "motivated"}},
}

// Themes is the life-area detection table.
var Themes = Table{
	{"work", []string{"work", "job", "office", "meeting", "deadline", "project", "task", "boss", "colleague", "career", "professional", "business", "client"}},
	{"family", []string{"family", "mom", "dad", "mother", "father", "parent", "kids", "children", "sibling", "brother", "sister", "spouse", "partner", "husband", "wife"}},
	{"relationships", []string{"relationship", "friend", "friendship", "date", "dating", "partner", "love", "romantic", "social", "connection"}},
	{"health", []string{"health", "exercise", "workout", "gym", "run", "running", "walk", "walking", "sleep", "diet", "nutrition", "doctor", "medical", "sick", "illness"}},
	{"personal_growth", []string{"learn", "learning", "growth", "develop", "development", "improve", "improvement", "goal", "goals", "achievement", "progress", "challenge"}},
	{"home", []string{"home", "house", "apartment", "room", "kitchen", "living", "bedroom", "clean", "organize", "domestic"}},
	{"money", []string{"money", "budget", "finance", "financial", "pay", "paid", "salary", "bill", "bills", "rent", "expense", "cost", "afford"}},
	{"education", []string{"study", "studying", "class", "school", "university", "college", "course", "exam", "homework", "lecture", "grade"}},
	{"hobbies", []string{"hobby", "hobbies", "art", "music", "reading", "book", "movie", "game", "sport", "creative", "craft"}},
	{"travel", []string{"travel", "trip", "vacation", "holiday", "flight", "hotel", "explore", "adventure", "journey"}},
	{"nature", []string{"nature", "park", "outdoor", "weather", "sun", "rain", "tree", "flowers", "garden", "beach", "mountain"}},
	{"technology", []string{"computer", "phone", "internet", "app", "software", "digital", "online", "tech"}},
	{"food", []string{"food", "eat", "eating", "restaurant", "cook", "cooking", "meal", "breakfast", "lunch", "dinner", "recipe"}},
}
