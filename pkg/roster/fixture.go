package roster

import (
	"context"
	"time"
)

// FixtureClashes is how many random clashes SeedFixture draws
const FixtureClashes = 16

type fixtureHero struct {
	name     string
	side     string
	birthday time.Time
	slogans  []string
	story    string
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var fixtureHeroes = []fixtureHero{
	{
		name:     "Aldric",
		side:     "dawn",
		birthday: date(1879, time.November, 7),
		slogans: []string{
			"A shield is only as strong as the hand that holds it.",
			"We march at first light, or not at all.",
			"Every wall was once a single stone.",
		},
		story: "Captain of the eastern watch who held the river ford for nine days with a company of forty. Later wrote the field manual still issued to every recruit of the Dawn.",
	},
	{
		name:     "Brenna",
		side:     "dawn",
		birthday: date(1870, time.April, 22),
		slogans: []string{
			"Learn, learn and learn again.",
			"The map is not the road.",
			"Bread first, banners after.",
		},
		story: "Quartermaster turned strategist. Reorganised the supply columns of the Dawn into the relay system that let the army cross the salt flats without losing a single wagon.",
	},
	{
		name:     "Corvin",
		side:     "dawn",
		birthday: date(1887, time.January, 28),
		slogans: []string{
			"Teaching the clever only spoils them.",
			"Keep your nerve and you will get your way.",
			"A fast horse forgives a slow plan.",
		},
		story: "Cavalry commander famous for his night raids and for never taking the same road twice. Songs about him are still sung in the border villages.",
	},
	{
		name:     "Delphine",
		side:     "dawn",
		birthday: date(1893, time.February, 16),
		slogans: []string{
			"Forward to the pass!",
			"Forward to the harbour!",
			"Sacrifice yourself, help the others.",
		},
		story: "The youngest marshal of the Dawn. Built the signal tower network along the northern ridge and was the first to coordinate two armies by mirror light.",
	},
	{
		name:     "Evander",
		side:     "dusk",
		birthday: date(1872, time.December, 16),
		slogans: []string{
			"Great, united and indivisible.",
			"Loyalty is not a name you carry but a land you love.",
			"Give people letters and dignity first, then ask them to follow.",
		},
		story: "General of the Dusk and a prolific writer of memoirs. Commanded the southern front for three years and later chronicled the war from exile.",
	},
	{
		name:     "Fiora",
		side:     "dusk",
		birthday: date(1878, time.August, 27),
		slogans: []string{
			"No chronicle can erase the dark pages, nor the bright ones.",
			"The army will roll across the land like a snowball, growing as it goes.",
			"Hold the line until the line holds you.",
		},
		story: "Commander-in-chief of the Dusk in its final campaign. Evacuated the peninsula garrison by sea in a single night without losing a ship.",
	},
	{
		name:     "Gideon",
		side:     "dusk",
		birthday: date(1862, time.July, 30),
		slogans: []string{
			"One country, whole and undivided.",
			"Strike until the colours change.",
			"Improvise, then make it look planned.",
		},
		story: "Veteran general known as the master of improvisation. Led the northwestern army of the Dusk and was the last to hold the order of the silver star.",
	},
	{
		name:     "Helena",
		side:     "dusk",
		birthday: date(1881, time.March, 3),
		slogans: []string{
			"Patience is a weapon that never dulls.",
			"Count the wells before you count the enemy.",
			"The quiet camp is the one that wins.",
		},
		story: "Intelligence chief of the Dusk. Ran a network of couriers through the mountain monasteries and was never once identified by the other side.",
	},
}

// SeedFixture loads the demo dataset: eight heroes on two sides, three
// slogans each, sixteen random clashes and one story per hero.
func (s *Store) SeedFixture(ctx context.Context) error {
	for _, hero := range fixtureHeroes {
		if err := s.AddHero(ctx, hero.name, hero.side, hero.birthday); err != nil {
			return err
		}
	}

	for _, hero := range fixtureHeroes {
		for _, slogan := range hero.slogans {
			if err := s.AddSlogan(ctx, hero.name, slogan); err != nil {
				return err
			}
		}
	}

	for i := 0; i < FixtureClashes; i++ {
		if _, err := s.AddClash(ctx); err != nil {
			return err
		}
	}

	for _, hero := range fixtureHeroes {
		if err := s.AddStoryToHero(ctx, hero.name, hero.story); err != nil {
			return err
		}
	}

	s.logger.WithOperation("seed_db").Info("The DB is filled with TEST DATA", nil)
	return nil
}
