package ui

// Screen texts. Color tags: <R> red, <G> green, <L> light grey, <W> white, <Y> yellow.
const (
	titleText = "The Mines of Tehon"

	introText = "There has been an increase in <R>Orc raids <L>recently. Your hamlet's letters to the <W>capital <L>have been ignored. " +
		"If something isn't done soon the <R>orcs<L> will swarm the countryside.\n" +
		"As a retired adventurer you have some knowledge of orcs. They're too organized, and must have a new <Y>leader<L> keeping them from fighting each other. " +
		"You volunteer to go <R>kill<L> this orc leader before your <G>home<L> is destroyed."

	beginPrompt = "Press any key to begin"
	titlePrompt = "Press any key to return to the title screen"

	exploreHelp = "<L>In the explore mode you have a map of the area. You recover stamina every turn that passes.\n" +
		"Enemies will chase you if you get close enough and they see you.\n" +
		"Your goal is to defeat the leader of the orcs and then escape.\n\n" +
		"<W>Controls\n" +
		" <G>W <L>- Move Up\n" +
		" <G>S <L>- Move Down\n" +
		" <G>A <L>- Move Left\n" +
		" <G>D <L>- Move Right\n" +
		" <G>Space <L>- Wait\n" +
		" <G>H <L>- Help"

	fightHelp = "<L>In combat you and your opponent face each other. If you lose all your health you die. " +
		"If you have stamina while taking damage that will be decreased first.\n" +
		"You and your opponent move markers around your combat grids; the cell you land on decides what you do that turn.\n\n" +
		"<W>Controls\n" +
		" <G>W <L>- Move Marker Up\n" +
		" <G>S <L>- Move Marker Down\n" +
		" <G>A <L>- Move Marker Left\n" +
		" <G>D <L>- Move Marker Right\n" +
		" <G>Space <L>- Move Marker To Center\n" +
		" <G>H <L>- Help"

	legendTitle = "<Y>Combat Grid Symbols"
	helpExit    = "<L>Press <G>'X'<L> to exit help."

	objectiveHunt   = "<W>Kill the <R>orc leader<W>!"
	objectiveEscape = "<G>Escape<W>!"

	fightPrompt = "<L>Move your marker with <G>W A S D<L>, <G>Space<L> to center, <G>H<L> for help"
)

// endingTexts is indexed by ending: failed, killed the leader but died, escaped.
var endingTexts = [...]string{
	"You have <R>failed<L> your mission.\nThe orc clans join together and destroy your home while your corpse is left to rot in the wilderness.",
	"You have <G>succeeded<L>, but <R>died<L> while trying to escape.\nWhen the orc clans disperse many pints are raised in the pub, and your sacrifice is remembered.",
	"You have <G>succeeded<L> and returned alive!\nThere is a celebration and you get very drunk. You don't remember much the next morning, but apparently you're now married.",
}
