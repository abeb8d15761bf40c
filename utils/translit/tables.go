package translit

// Character tables for rule-based Malayalam-to-Latin transliteration.
// All maps are read-only after package initialization.

// conjuncts maps consonant+virama+consonant clusters (and a few longer
// forms) to Latin clusters. Checked before the single-consonant rule.
var conjuncts = map[string]string{
	"ക്ക": "kka", "ക്ഷ": "ksha", "ക്ത": "ktha",
	"ങ്ക": "nka", "ങ്ങ": "nga", "ച്ച": "ccha",
	"ഞ്ച": "ncha", "ഞ്ഞ": "nja", "ട്ട": "tta",
	"ണ്ട": "nda", "ണ്ണ": "nna", "ത്ത": "ttha",
	"ന്ത": "ntha", "ന്ന": "nna", "ന്ദ": "nda",
	"ന്ധ": "ndha", "ന്റ": "nra", "പ്പ": "ppa",
	"മ്പ": "mba", "മ്മ": "mma", "യ്യ": "yya",
	"ല്ല": "lla", "ള്ള": "lla", "വ്വ": "vva",
	"ശ്ശ": "shsha", "സ്സ": "ssa", "റ്റ": "tta",
	"ഷ്ട": "shta", "ഷ്ണ": "shna", "സ്ക": "ska",
	"സ്ത": "stha", "സ്ഥ": "stha", "സ്മ": "sma",
	"സ്ന": "sna", "സ്പ": "spa", "സ്ഫ": "spha",
	"സ്ര": "sra", "ദ്ദ": "dda", "ദ്ധ": "ddha",
	"ദ്ര": "dra", "ബ്ബ": "bba", "ബ്ദ": "bda",
	"ബ്ധ": "bdha", "ബ്ര": "bra", "ജ്ജ": "jja",
	"ജ്ഞ": "gna", "ഗ്ഗ": "gga", "ഗ്ന": "gna",
	"ഗ്മ": "gma", "ഗ്ര": "gra", "ക്ര": "kra",
	"ക്ല": "kla", "പ്ര": "pra", "പ്ല": "pla",
	"ത്ര": "thra", "ത്മ": "thma", "ഫ്ര": "phra",
	"ശ്ര": "shra", "ന്ദ്ര": "ndra",
}

// consonants carry an inherent 'a' that the scanner appends separately.
var consonants = map[string]string{
	"ക": "k", "ഖ": "kh", "ഗ": "g", "ഘ": "gh", "ങ": "ng",
	"ച": "ch", "ഛ": "chh", "ജ": "j", "ഝ": "jh", "ഞ": "nj",
	"ട": "t", "ഠ": "th", "ഡ": "d", "ഢ": "dh", "ണ": "n",
	"ത": "th", "ഥ": "thh", "ദ": "d", "ധ": "dh", "ന": "n",
	"പ": "p", "ഫ": "ph", "ബ": "b", "ഭ": "bh", "മ": "m",
	"യ": "y", "ര": "r", "ല": "l", "വ": "v", "ശ": "sh",
	"ഷ": "sh", "സ": "s", "ഹ": "h", "ള": "l", "ഴ": "zh",
	"റ": "r",
}

// Independent vowel forms.
var vowels = map[string]string{
	"അ": "a", "ആ": "aa", "ഇ": "i", "ഈ": "ee", "ഉ": "u", "ഊ": "oo",
	"ഋ": "ri", "എ": "e", "ഏ": "e", "ഐ": "ai", "ഒ": "o", "ഓ": "o",
	"ഔ": "au",
}

// Dependent vowel signs (matras).
var matras = map[string]string{
	"ാ": "a", "ി": "i", "ീ": "ee", "ു": "u", "ൂ": "oo", "ൃ": "ri",
	"െ": "e", "േ": "e", "ൈ": "ai", "ൊ": "o", "ോ": "o", "ൌ": "au",
	"ൗ": "au",
}

// specials: anusvara, visarga, virama (silences the inherent vowel),
// chillu letters, and zero-width joiners that OCR leaks through.
var specials = map[string]string{
	"ം": "m", "ഃ": "h", "്": "", "ൻ": "n",
	"ൽ": "l", "ൾ": "l", "ർ": "r", "ൺ": "n",
	"ൿ": "k", "\u200d": "", "\u200c": "",
}

// knownNames overrides algorithmic output for common Kerala names whose
// mechanical transliteration reads wrong in English.
var knownNames = map[string]string{
	"അബ്ദുള്ള": "Abdulla", "അബ്ദുല്\u200d": "Abdul",
	"മുഹമ്മദ്": "Muhammed", "മുഹമ്മദ്\u200c": "Muhammed",
	"മുഹമ്മെദ്": "Muhammed", "ഫാത്തിമ": "Fathima",
	"ആയിശ": "Ayisha", "ഹസൻ": "Hasan",
	"ഹുസൈൻ": "Hussain", "ഇബ്രാഹിം": "Ibrahim",
	"കരീം": "Kareem", "അഹമ്മദ്": "Ahmed",
	"അഹമ്മദ്\u200c": "Ahmed", "അഹമ്മെദ്": "Ahmed",
	"റഹ്മാൻ": "Rahman", "റഹിമാൻ": "Rahman",
	"റഹിമാന്\u200d": "Rahman", "നാസർ": "Naser",
	"നാസര്\u200d": "Naser", "ബീരാൻ": "Beeran",
	"ബീരാന്\u200d": "Beeran", "ഉമ്മർ": "Ummar",
	"ഉമ്മര്\u200d": "Ummar", "മൊയ്തീൻ": "Moitheen",
	"മൊയ്തീന്\u200d": "Moitheen", "അലി": "Ali",
	"ഹസീന": "Haseena", "ഹസീനാ": "Haseena",
	"ആമിന": "Amina", "സൈനബ": "Sainaba",
	"ഖദീജ": "Khadija", "നൂറുന്നീസ": "Noornisa",
	"രാജേഷ്": "Rajesh", "രാജേഷ്\u200c": "Rajesh",
	"ലക്ഷ്മി": "Lakshmi", "ജയലക്ഷ്മി": "Jayalakshmi",
	"ഗോപിനാഥൻ": "Gopinathan", "ഗോപിനാഥന്\u200d": "Gopinathan",
	"ഗോപാലകൃഷ്ണൻ": "Gopalakrishnan", "കൃഷ്ണൻ": "Krishnan",
	"ബാലകൃഷ്ണൻ": "Balakrishnan", "നാരായണൻ": "Narayanan",
	"ശങ്കരൻ": "Shankaran", "വിജയൻ": "Vijayan",
	"ദിനേശൻ": "Dineshan", "സുരേഷ്": "Suresh",
	"മനോജ്": "Manoj", "പ്രദീപ്": "Pradeep",
	"അനിത": "Anitha", "ശാന്ത": "Shantha",
	"കമല": "Kamala", "ഗീത": "Geetha",
	"ശ്രീദേവി": "Sreedevi", "സഫിയ": "Safiya",
	"കുമാർ": "Kumar", "കുമാര്\u200d": "Kumar",
	"കുമാരി": "Kumari", "നായർ": "Nair",
	"നായര്\u200d": "Nair", "മേനോൻ": "Menon",
	"മേനോന്\u200d": "Menon", "പിള്ള": "Pilla",
	"പണിക്കർ": "Panikkar", "ജോസ്": "Jose",
	"ജോസ്\u200c": "Jose", "ജോർജ്": "George",
	"തോമസ്": "Thomas", "മാത്യു": "Mathew",
	"ചന്ദ്രൻ": "Chandran", "രമേശ്": "Ramesh",
	"ബഷീർ": "Basheer", "ബഷിര്\u200d": "Basheer",
	"ഷാജി": "Shaji", "സജി": "Saji",
	"വിനോദ്": "Vinod", "അനീസ്": "Anees",
	"സന്തോഷ്": "Santhosh", "ഗണേഷ്": "Ganesh",
	"ഗണേഷ്\u200c": "Ganesh", "ഗണേശ്": "Ganesh",
	"ബാബു": "Babu", "മോഹൻ": "Mohan",
	"മോഹന്\u200d": "Mohan", "ദേവി": "Devi",
	"ബീവി": "Beevi", "ഷിഹാബ്": "Shihab",
	"ഷിഹാബ്\u200c": "Shihab", "അസ്മ": "Asma",
	"ആഷിറ": "Ashira", "ശോഭി": "Shobhi",
	"എൽസ": "Elsa", "എല്\u200dസ": "Elsa",
	"എല്\u200dസാ": "Elsa", "ആശ": "Asha",
	"നസീർ": "Naseer", "നസീര്\u200d": "Naseer",
	"മൻസൂർ": "Mansoor", "മന്\u200dസൂര്\u200d": "Mansoor",
	"ശംസുദ്ദീൻ": "Shamsudeen", "ശംസുദ്ധീന്\u200d": "Shamsudeen",
	"അബൂബക്കർ": "Abubakar", "അബൂബക്കര്\u200d": "Abubakar",
	"അബ്ദുറഹീം": "Abdurraheem", "സത്യൻ": "Sathyan",
	"സത്യന്\u200d": "Sathyan", "നബീൽ": "Nabeel",
	"നബില്\u200d": "Nabeel", "ഹാജറ": "Hajara",
	"ജോബിൻ": "Jobin", "ജോബിന്\u200d": "Jobin",
	"പ്രദീഷ്": "Pradeesh", "മഞ്ജുള": "Manjula",
	"മുജീബ്": "Mujeeb", "മുജീബ്\u200c": "Mujeeb",
	"ഷൂഹൈബ്": "Shuhaib", "ഷൂഹൈബ്\u200c": "Shuhaib",
	"ശാരിക്": "Sharik", "ശാരിക്\u200c": "Sharik",
	"മുഹന്നദ്": "Muhanned", "മൊസ്തീൻ": "Mostheen",
	"മൊസ്തീന്\u200d": "Mostheen", "അഷറഫ്": "Ashraf",
	"അഷറഫ്\u200c": "Ashraf", "ഗഫൂർ": "Ghafoor",
	"ഗഫൂര്\u200d": "Ghafoor", "കുഞ്ഞാലി": "Kunjali",
	"കൂഞ്ഞാലി": "Kunjali", "നാസിറുദ്ദീൻ": "Nasirudeen",
	"നാസിറുദ്ദീന്\u200d": "Nasirudeen", "ഉണ്ണിമോയിൻ": "Unnimoyin",
	"ഉണ്ണിമോയിന്\u200d": "Unnimoyin", "സൈദലവി": "Saidalavi",
}

