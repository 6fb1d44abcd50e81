package bible

// book describes a book of the Protestant canon.
type book struct {
	name     string
	chapters int
	aliases  []string
}

// books lists the canonical books with the abbreviations found in
// confession proof texts. Aliases are lower case without full stops.
var books = []book{
	{"Genesis", 50, []string{"gen", "ge", "gn"}},
	{"Exodus", 40, []string{"exod", "exo", "ex"}},
	{"Leviticus", 27, []string{"lev", "le", "lv"}},
	{"Numbers", 36, []string{"num", "nu", "nm", "nb"}},
	{"Deuteronomy", 34, []string{"deut", "deu", "dt"}},
	{"Joshua", 24, []string{"josh", "jos", "jsh"}},
	{"Judges", 21, []string{"judg", "jdg", "jg", "jdgs"}},
	{"Ruth", 4, []string{"rth", "ru"}},
	{"1 Samuel", 31, []string{"1 sam", "1 sa", "1 sm"}},
	{"2 Samuel", 24, []string{"2 sam", "2 sa", "2 sm"}},
	{"1 Kings", 22, []string{"1 kgs", "1 ki", "1 kin"}},
	{"2 Kings", 25, []string{"2 kgs", "2 ki", "2 kin"}},
	{"1 Chronicles", 29, []string{"1 chron", "1 chr", "1 ch"}},
	{"2 Chronicles", 36, []string{"2 chron", "2 chr", "2 ch"}},
	{"Ezra", 10, []string{"ezr"}},
	{"Nehemiah", 13, []string{"neh", "ne"}},
	{"Esther", 10, []string{"esth", "est", "es"}},
	{"Job", 42, []string{"jb"}},
	{"Psalms", 150, []string{"psalm", "ps", "psa", "pss", "psm"}},
	{"Proverbs", 31, []string{"prov", "pro", "prv", "pr"}},
	{"Ecclesiastes", 12, []string{"eccles", "eccl", "ecc", "ec", "qoh"}},
	{"Song of Solomon", 8, []string{"song", "song of songs", "sos", "canticles", "cant"}},
	{"Isaiah", 66, []string{"isa", "is"}},
	{"Jeremiah", 52, []string{"jer", "je", "jr"}},
	{"Lamentations", 5, []string{"lam", "la"}},
	{"Ezekiel", 48, []string{"ezek", "eze", "ezk"}},
	{"Daniel", 12, []string{"dan", "da", "dn"}},
	{"Hosea", 14, []string{"hos", "ho"}},
	{"Joel", 3, []string{"jl"}},
	{"Amos", 9, []string{"am"}},
	{"Obadiah", 1, []string{"obad", "ob"}},
	{"Jonah", 4, []string{"jnh", "jon"}},
	{"Micah", 7, []string{"mic", "mc"}},
	{"Nahum", 3, []string{"nah", "na"}},
	{"Habakkuk", 3, []string{"hab", "hb"}},
	{"Zephaniah", 3, []string{"zeph", "zep", "zp"}},
	{"Haggai", 2, []string{"hag", "hg"}},
	{"Zechariah", 14, []string{"zech", "zec", "zc"}},
	{"Malachi", 4, []string{"mal", "ml"}},
	{"Matthew", 28, []string{"matt", "mat", "mt"}},
	{"Mark", 16, []string{"mrk", "mar", "mk", "mr"}},
	{"Luke", 24, []string{"luk", "lk"}},
	{"John", 21, []string{"joh", "jhn", "jn"}},
	{"Acts", 28, []string{"act", "ac"}},
	{"Romans", 16, []string{"rom", "ro", "rm"}},
	{"1 Corinthians", 16, []string{"1 cor", "1 co"}},
	{"2 Corinthians", 13, []string{"2 cor", "2 co"}},
	{"Galatians", 6, []string{"gal", "ga"}},
	{"Ephesians", 6, []string{"eph", "ephes"}},
	{"Philippians", 4, []string{"phil", "php", "pp"}},
	{"Colossians", 4, []string{"col", "co"}},
	{"1 Thessalonians", 5, []string{"1 thess", "1 thes", "1 th"}},
	{"2 Thessalonians", 3, []string{"2 thess", "2 thes", "2 th"}},
	{"1 Timothy", 6, []string{"1 tim", "1 ti"}},
	{"2 Timothy", 4, []string{"2 tim", "2 ti"}},
	{"Titus", 3, []string{"tit"}},
	{"Philemon", 1, []string{"philem", "phm", "pm"}},
	{"Hebrews", 13, []string{"heb"}},
	{"James", 5, []string{"jas", "jm"}},
	{"1 Peter", 5, []string{"1 pet", "1 pe", "1 pt"}},
	{"2 Peter", 3, []string{"2 pet", "2 pe", "2 pt"}},
	{"1 John", 5, []string{"1 jn", "1 jhn", "1 joh"}},
	{"2 John", 1, []string{"2 jn", "2 jhn", "2 joh"}},
	{"3 John", 1, []string{"3 jn", "3 jhn", "3 joh"}},
	{"Jude", 1, []string{"jud", "jd"}},
	{"Revelation", 22, []string{"rev", "re", "revelations", "apocalypse", "apoc"}},
}
