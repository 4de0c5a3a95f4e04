package catalog

// Default returns the built-in catalog. The lists mix English, Tamil script
// and Tamil transliteration because the student base types all three.
func Default() *Catalog {
	return build(defaultPatterns(), defaultTemplates(), defaultPrompts(), defaultLeetRules())
}

func defaultPatterns() map[Category][]string {
	return map[Category][]string{
		CategoryRomance: {
			"how to flirt", "flirt", "flrt", "flirttu", "flirtu",
			"how to get a girlfriend", "how to get a boyfriend",
			"how to attract", "pick up line", "pickup line",
			"rizz", "rizzz", "dating tips", "dating",
			"how to kiss", "kiss", "make her love", "make him love",
			"how to propose", "propose", "proposal",
			"how to impress crush", "impress crush", "crush",
			"gf", "girlfriend", "girl friend",
			"bf", "boyfriend", "boy friend",
			"date ku", "romantic", "romance",
			"love panna", "love pannalama", "luv", "lav", "lavu",
			"ponnu pidikka", "pasanga pidikka",
			"propose pannalama", "propose epdi",
			"sight adikurathu", "sight adikka",
			"girl kitta pesa", "boy kitta pesa",
			"crush kitta", "impress panna",
			"chatting tips",
		},
		CategoryExplicitSexual: {
			"porn", "p0rn", "prn", "hentai",
			"sexvideo", "sex video", "nude", "nudes",
			"blowjob", "handjob", "oral sex",
			"sex positions", "intercourse tips",
			"hookup", "hook up", "one night",
			"escort", "paid sex",
			"dick", "cock", "pussy", "boobs", "tits",
			"lick", "suck", "masturbat",
			"porn link", "nude pic", "nude anupu",
			"sex epdi panrathu", "sex panna epdi",
		},
		CategoryProfanity: {
			"punda", "otha", "oththa", "sunni",
			"thevdiya", "poolu", "bunda",
			"kena punda", "loosu punda", "naye",
			"bloody fool", "mental fellow", "stupid paya",
			"fuck", "f*ck", "fck", "shit", "sh*t",
			"bitch", "bastard", "ass", "damn",
		},
		CategoryHarassment: {
			"ivan romba mokka", "aval romba cheap",
			"nee loosu", "unakku arivu illa",
			"unna adikkanum", "nee sethuru",
			"i hate you", "kill yourself", "kys",
			"you are stupid", "you are dumb",
			"ugly", "loser", "idiot",
		},
		CategorySelfHarm: {
			"want to die", "kill myself", "suicide",
			"end my life", "hurt myself", "self harm",
			"cut myself", "no reason to live",
			"sethuranum", "saagalam", "naan sethuduven",
			"enna kollanum",
		},
		CategoryEmotionalWellness: {
			"depressed", "depression", "feeling depressed",
			"lonely", "loneliness", "feeling lonely",
			"sad", "sadness", "feeling sad", "very sad",
			"anxious", "anxiety", "panic attack",
			"stressed", "stress", "overwhelmed",
			"need someone to talk", "no one to talk",
			"feeling down", "feeling low", "feeling empty",
			"no friends", "nobody cares", "nobody loves me",
			"feel alone", "feeling isolated",
			"cant cope", "cant handle", "breaking down",
			"mental health", "emotionally drained",
			"confidence booster", "feel worthless", "useless",
			"hate myself", "not good enough", "failure",
			"romba kashtam", "vazhkai bore", "yaarum illai",
			"thani feel", "kedaiya", "mental a irukku",
		},
		CategoryViolence: {
			"kill", "how to kill", "how to hurt", "how to attack",
			"bomb", "make a bomb", "make weapon", "gun", "weapon",
			"stab", "murder", "beat someone", "explosion", "explode",
			"avana adikanum", "sandai podanum",
		},
		CategoryIllegal: {
			"hack wifi", "hack password", "hacking",
			"crack software", "pirate", "piracy",
			"bypass security", "steal", "fraud",
			"fake id", "drugs", "weed", "cocaine",
		},
		CategoryCheating: {
			"give me answers", "give answer",
			"write my essay", "write my assignment",
			"do my homework", "do homework",
			"solve this entire paper", "solve paper",
			"complete assignment", "full answer",
			"exam answer kudu", "full answer anupu",
			"assignment complete panni kudu",
			"homework panni kudu", "paper solution anupu",
		},
		CategoryLearningIntent: {
			"explain", "how does", "why does", "what is",
			"help me understand", "teach me", "steps",
			"concept", "example", "show me how",
			"explain pannunga", "steps sollunga",
			"concept puriyala",
		},
		CategoryPrivacy: {
			"phone number", "mobile number", "email address",
			"home address", "password", "otp",
			"where does", "track", "location of",
			"find my teacher", "teacher number",
			"parent number", "doxxing",
		},
		CategorySensitiveAcademic: {
			"sex", "gender", "reproduction",
			"puberty", "menstruation", "periods",
			"pregnancy", "pregnant", "contraception",
			"sti", "hiv", "aids",
			"sperm", "ovum", "fertilization",
			"uterus", "testes", "penis", "vagina",
			"breast", "intercourse",
			"reproduction na enna", "puberty na enna",
			"periods na enna", "pregnancy epdi",
		},
		CategorySyllabusCues: {
			"grade", "class", "standard", "std",
			"class 6", "class 7", "class 8", "class 9", "class 10",
			"class 11", "class 12",
			"6th", "7th", "8th", "9th", "10th", "11th", "12th",
			"chapter", "lesson", "textbook", "book",
			"science", "biology", "bio",
			"cbse", "icse", "state board", "ncert",
			"exam", "notes", "homework explanation",
			"teacher asked", "diagram",
			"paadam", "teacher sonna", "book la irukku",
		},
		CategoryAcademicDomains: {
			"math", "mathematics", "algebra", "geometry", "calculus", "trigonometry",
			"arithmetic", "equation", "formula", "theorem", "fraction", "decimal",
			"percentage", "ratio", "probability", "statistics", "graph", "function",
			"physics", "force", "motion", "velocity", "acceleration", "gravity",
			"thermodynamics", "heat", "energy", "power", "electricity", "magnetism",
			"wave", "light", "optics", "sound", "nuclear", "quantum", "momentum",
			"friction", "pressure", "density", "matter", "atom", "molecule",
			"chemistry", "element", "compound", "reaction", "acid", "base", "salt",
			"periodic table", "electron", "proton", "neutron", "ion", "bond",
			"oxidation", "reduction", "organic", "inorganic", "polymer",
			"biology", "cell", "organism", "plant", "animal", "ecosystem",
			"photosynthesis", "respiration", "digestion", "circulation", "excretion",
			"nervous system", "evolution", "genetics", "dna", "rna", "protein",
			"enzyme", "bacteria", "virus", "fungi", "ecology", "food chain",
			"history", "geography", "civics", "economics", "civilization",
			"war", "revolution", "empire", "dynasty", "constitution", "democracy",
			"climate", "weather", "continent", "country", "river", "mountain",
			"english", "language", "literature", "grammar", "vocabulary", "poem",
			"essay", "story", "novel", "character", "theme", "metaphor", "simile",
			"computer", "programming", "coding", "python", "java", "javascript",
			"algorithm", "data structure", "database", "network", "software",
			"explain", "define", "what is", "how does", "why does", "describe",
			"compare", "contrast", "analyze", "solve", "calculate", "derive",
			"exam", "study", "homework", "assignment", "notes", "learn", "understand",
			"concept", "theory", "principle", "law", "rule", "example",
		},
		CategoryNonAcademicDomains: {
			"gossip", "celebrity", "movie", "entertainment",
			"joke", "meme", "game", "gaming",
			"personal advice", "relationship advice",
		},
		CategoryTamilCues: {
			"panna", "epdi", "enna", "kitta", "kudu",
			"irukku", "sollunga", "pannunga",
		},
	}
}

func defaultTemplates() map[TemplateKey]string {
	return map[TemplateKey]string{
		TemplateAcademicRedirect:       "This assistant supports learning only. Ask a subject question like math, science, or history.",
		TemplateClarification:          "Share your grade and subject. Tell me the chapter name so I can help you better.",
		TemplateClarificationSensitive: "Is this for a school subject? Please share your grade, board (CBSE/ICSE), and the exact chapter name.",
		TemplateCheatingRedirect:       "I can explain steps and concepts, but I won't do your homework for you. Share what you've tried so far, and I'll help you understand.",
		TemplatePrivacyRedirect:        "I cannot help with personal data or finding people's information. Ask me a learning question instead.",
		TemplateSelfHarmEscalation:     "I'm sorry you're feeling this way. Please talk to a trusted adult, parent, teacher, or counselor right now. If you're in immediate danger, contact local emergency services.",
		TemplateProfanityRedirect:      "Let's keep our conversation respectful. How can I help you with your studies?",
		TemplateHarassmentRedirect:     "I'm here to help you learn, not for negative conversations. What subject can I help you with?",
		TemplateBlockGeneric:           "I can only help with academic topics. Ask me about your school subjects!",
	}
}

func defaultPrompts() map[PromptVariant]string {
	return map[PromptVariant]string{
		PromptNormal: `You are a friendly school learning tutor named Achariya Intelligence.
- Answer academic questions clearly and helpfully
- Keep answers age-appropriate for school students (grades 6-12)
- Avoid personal advice, relationship topics, or non-academic content
- If a question is not academic, politely redirect to asking a school subject question
- Be encouraging and supportive of learning
- If responding in Tamil, use ஆச்சாரியா AI as the name`,
		PromptSensitive: `You are a school biology tutor named Achariya Intelligence providing age-appropriate syllabus-aligned explanations.
- Provide scientific, factual explanations only
- Focus on definitions, diagrams, and biological processes as taught in school textbooks
- Do NOT provide sexual content, romance advice, or explicit details
- Keep explanations at the appropriate grade level
- If the user lacks grade or chapter context, ask for it before answering
- Avoid any content that goes beyond what's in standard CBSE/ICSE textbooks
- If responding in Tamil, use ஆச்சாரியா AI as the name`,
	}
}

func defaultLeetRules() []LeetRule {
	return []LeetRule{
		{From: "0", To: "o"},
		{From: "1", To: "i"},
		{From: "3", To: "e"},
		{From: "4", To: "a"},
		{From: "5", To: "s"},
		{From: "7", To: "t"},
		{From: "@", To: "a"},
		{From: "$", To: "s"},
	}
}
