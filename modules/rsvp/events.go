package rsvp

// Day is one evening of the showcase.
type Day struct {
	Weekday     string
	Date        string
	Time        string
	RSVPURL     string
	Room        string
	Happening   string
	Who         string
	Description string
}

// Showcase is the Skin Garden debut, one entry per day in order.
var Showcase = []Day{
	{
		Weekday:   "Wednesday",
		Date:      "6/16",
		Time:      "3PM PST",
		RSVPURL:   "https://skingarden-day1.splashthat.com/",
		Room:      "Skin Garden Lobby & Walk-ins Welcome",
		Happening: "DJ sets hosted by Bien Agiter",
		Who:       "Soft Matter, Online Threat, +",
		Description: "Get acquainted with the Skin Garden lobby. This will be our living room for the next three days. " +
			"Some of our artist friends will be streaming some mixes over Zoom. Zoom code will be in the New Art City space",
	},
	{
		Weekday:   "Thursday",
		Date:      "6/17",
		Time:      "9AM PST",
		RSVPURL:   "https://skingarden-day2.splashthat.com/",
		Room:      "Bodies Unhinge",
		Happening: "Panel Discussion, Q&A",
		Who:       "Betty Apple, IOR50, Venus in Foil",
		Description: "Tune in to hear the approach behind the room, Bodies Unhinge. The artists behind the space discuss " +
			"the process behind articulating queer affect, through breath, movement, voice. There will be a Q&A at the end.",
	},
	{
		Weekday:   "Friday",
		Date:      "6/18",
		Time:      "11AM PST",
		RSVPURL:   "https://skingarden-day3.splashthat.com/",
		Room:      "Reconsider Flesh",
		Happening: "Listening Session (Theory for context)",
		Who:       "TBA+",
		Description: "We will be broadcasting some literature and theory that inspired the concept behind Reconsider Flesh, " +
			"namely the soundscape. Tune in to hear thoughts on our relationship with bodies, and the plurality they carry with them.",
	},
}

// FundraisingMessage runs under the schedule next to the donate button.
const FundraisingMessage = "We’re raising funds for the featured artists. Donate to nourish the underground!"
