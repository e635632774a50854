package update

// Character lines shown in the companion panel. One line is picked at
// random per event so repeated sessions do not read identically.

var characterLines = map[string][]string{
	"start_work": {
		"Let's get after it. I'll keep time.",
		"Focus mode on. You've got this.",
		"Deep breath. Here we go.",
	},
	"start_break": {
		"Stretch those legs, you earned it.",
		"Break time. Step away from the keyboard.",
		"Rest up, the next round can wait.",
	},
	"encouragement": {
		"Halfway there, keep the streak alive!",
		"You're crushing it. Don't stop now.",
		"Half done already. Nice pace.",
	},
	"task_complete": {
		"Another one down! 🎉",
		"Check! That felt good, didn't it?",
		"Done and dusted.",
	},
	"work_complete": {
		"Session complete! Take that break.",
		"Boom. One more pomodoro in the bank.",
		"That's how it's done. Breather time.",
	},
	"break_complete": {
		"Recharged? Back to it.",
		"Break's over, let's make this one count.",
	},
	"milestone": {
		"Four in a row! Long break unlocked.",
		"That's a full set milestone. Outstanding.",
	},
}

func (m *Model) characterSay(kind string) string {
	lines := characterLines[kind]
	if len(lines) == 0 {
		return ""
	}
	line := lines[m.rng.Intn(len(lines))]
	m.CharacterLine = line
	return line
}
