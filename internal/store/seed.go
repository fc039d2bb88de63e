package store

import (
	"fmt"

	"github.com/hrut/journal/internal/domain"
	"github.com/hrut/journal/internal/logger"
)

type sampleEntry struct {
	text      string
	createdAt string
	analysis  domain.Analysis
}

var sampleEntries = []sampleEntry{
	{
		text:      "My family was the most salient part of my day, since most days the care of my 2 children occupies the majority of my time. They are 2 years old and 7 months and I love them, but they also require so much attention that my anxiety is higher than ever. I am often overwhelmed by the care they require, but at the same time, I am so excited to see them hit developmental and social milestones.",
		createdAt: "2025-08-15",
		analysis:  domain.Analysis{Sentiment: "neutral", Intensity: 3, Emotions: []string{"anxiety", "love", "stress"}, Themes: []string{"family"}},
	},
	{
		text:      "Yesterday, I finished two of the requirements for the semester. I felt relieved because the requirements were hindering me from writing my MA thesis. Now I can focus on my research and writing without these distractions.",
		createdAt: "2025-08-16",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 4, Emotions: []string{"pride", "calm"}, Themes: []string{"education", "personal_growth"}},
	},
	{
		text:      "Yesterday was a very productive day at work for me. I finished all of my work for my real-world job very quickly, and was able to also make over $100 from my side projects. Feeling accomplished and financially motivated.",
		createdAt: "2025-08-17",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 4, Emotions: []string{"pride", "joy"}, Themes: []string{"work", "money"}},
	},
	{
		text:      "Yesterday my children and grandchildren came over for a cookout. I had not seen them all together for a few weeks so it was great to get them all together. We grilled burgers and played games in the backyard.",
		createdAt: "2025-08-18",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 4, Emotions: []string{"joy", "love"}, Themes: []string{"family", "food"}},
	},
	{
		text:      "Yesterday I went for a walk with a friend. About a mile into our walk it started pouring down rain. We were soaked before we made it back to the car, but we laughed the whole way. Sometimes the unexpected moments are the most fun.",
		createdAt: "2025-08-19",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 3, Emotions: []string{"joy", "calm"}, Themes: []string{"relationships", "health", "nature"}},
	},
	{
		text:      "Yesterday I had to go to the dentist and was worried about my oral health. You see, 3 months ago, when I went for my teeth cleaning, the checkup was not good. But today the dentist said my gums look much better and I'm on the right track.",
		createdAt: "2025-08-20",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 3, Emotions: []string{"anxiety", "hope"}, Themes: []string{"health"}},
	},
	{
		text:      "Work was long today. I did a lot of different projects at 2 different stores. It was frustrating some of the time, but the fact that I finished everything I set out to do made me feel accomplished by the end of the day.",
		createdAt: "2025-08-21",
		analysis:  domain.Analysis{Sentiment: "neutral", Intensity: 3, Emotions: []string{"stress", "pride"}, Themes: []string{"work"}},
	},
	{
		text:      "When nothing goes right I know God is there with me. He is there to lift me up. He's always there to talk to and never judges me. I love him and always will. Faith gives me strength during difficult times.",
		createdAt: "2025-08-22",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 4, Emotions: []string{"hope", "love", "calm"}, Themes: []string{"personal_growth"}},
	},
	{
		text:      "Was able to meet up with my girlfriend after a week of not seeing her. I was very excited to spend time together and catch up on everything that happened while we were apart. We went to our favorite restaurant.",
		createdAt: "2025-08-23",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 4, Emotions: []string{"joy", "love"}, Themes: []string{"relationships", "food"}},
	},
	{
		text:      "Today we had a snow day or shall I be more specific; we had an ice day! There was a layer of slick ice that coated all outdoor surfaces so my children couldn't go to school. We made hot chocolate and watched movies all day.",
		createdAt: "2025-08-24",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 3, Emotions: []string{"joy", "calm"}, Themes: []string{"family", "nature", "home"}},
	},
	{
		text:      "Today I was very sick. It seems everybody I know has a cold and I thought I was above it but no. I had some orange juice and went back to bed. Not a good day but hoping tomorrow will be better.",
		createdAt: "2025-08-25",
		analysis:  domain.Analysis{Sentiment: "negative", Intensity: 2, Emotions: []string{"tired", "hope"}, Themes: []string{"health"}},
	},
	{
		text:      "This would be kayaking with my dog. There is nothing more peaceful than taking the boat out on the water with my best pal and just enjoying the peace and quiet. The water was calm and the weather perfect.",
		createdAt: "2025-08-26",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 5, Emotions: []string{"calm", "joy"}, Themes: []string{"nature", "hobbies"}},
	},
	{
		text:      "The most salient thing I felt yesterday was loving life. I for the most part feel blessed in all that I have accomplished in life and am very grateful for my family, friends, and opportunities.",
		createdAt: "2025-08-27",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 5, Emotions: []string{"gratitude", "joy", "love"}, Themes: []string{"personal_growth", "family", "relationships"}},
	},
	{
		text:      "The kids had a half day at school and went for a hang out at different friend's homes. I picked them up after work and both friends are from affluent families. It made me reflect on what we can provide versus what others have.",
		createdAt: "2025-08-28",
		analysis:  domain.Analysis{Sentiment: "neutral", Intensity: 2, Emotions: []string{"confusion"}, Themes: []string{"family", "money"}},
	},
	{
		text:      "Spending time with my wife after work is the most precious event of the day. Making our dinner together and catching up on things during cooking time. These quiet moments together mean everything to me.",
		createdAt: "2025-08-29",
		analysis:  domain.Analysis{Sentiment: "positive", Intensity: 5, Emotions: []string{"love", "gratitude", "calm"}, Themes: []string{"relationships", "food", "home"}},
	},
}

// Seed loads the bundled sample journal entries. It is a no-op when the
// store already holds entries.
func (s *Store) Seed() error {
	n, err := s.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Insert newest sample first so the oldest ends up at the front of
	// the store, keeping the stats scan in sample order.
	for i := len(sampleEntries) - 1; i >= 0; i-- {
		sample := sampleEntries[i]
		a := sample.analysis
		if _, err := s.Add(sample.text, sample.createdAt, &a); err != nil {
			return fmt.Errorf("seed entry (%s): %w", sample.createdAt, err)
		}
	}

	logger.Info("seeded %d sample entries", len(sampleEntries))
	return nil
}
