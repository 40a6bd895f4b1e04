package utils

// asciiTable maps a non-ASCII character to its ASCII replacement.
// Built once from transliterations; the first entry for a character wins.
var asciiTable = buildASCIITable()

var transliterations = []struct {
	ascii string
	chars string
}{
	{"a", "àáảãạăắằẳẵặâấầẩẫậäāąåαάἀἁἂἃἄἅἆἇᾀᾁᾂᾃᾄᾅᾆᾇὰάᾰᾱᾲᾳᾴᾶᾷаأ"},
	{"b", "бβЪЬب"},
	{"c", "çćčĉċ"},
	{"d", "ďðđƌȡɖɗᵭᶁᶑдδدض"},
	{"e", "éèẻẽẹêếềểễệëēęěĕėεέἐἑἒἓἔἕὲέеёэєə"},
	{"f", "фφف"},
	{"g", "ĝğġģгґγج"},
	{"h", "ĥħηήحه"},
	{"i", "íìỉĩịîïīĭįıιίϊΐἰἱἲἳἴἵἶἷὶίῐῑῒΐῖῗіїи"},
	{"j", "ĵјЈ"},
	{"k", "ķĸкκĶقك"},
	{"l", "łľĺļŀлλل"},
	{"m", "мμم"},
	{"n", "ñńňņŉŋνнن"},
	{"o", "óòỏõọôốồổỗộơớờởỡợøōőŏοὀὁὂὃὄὅὸόöоوθ"},
	{"p", "пπ"},
	{"r", "ŕřŗрρر"},
	{"s", "śšşсσșςسص"},
	{"t", "ťţтτțتط"},
	{"u", "úùủũụưứừửữựüûūůűŭųµу"},
	{"v", "в"},
	{"w", "ŵωώ"},
	{"x", "χ"},
	{"y", "ýỳỷỹỵÿŷйыυϋύΰي"},
	{"z", "źžżзζز"},
	{"aa", "ع"},
	{"ae", "æ"},
	{"ch", "ч"},
	{"dj", "ђđ"},
	{"dz", "џ"},
	{"gh", "غ"},
	{"kh", "хخ"},
	{"lj", "љ"},
	{"nj", "њ"},
	{"oe", "œ"},
	{"ps", "ψ"},
	{"sh", "ш"},
	{"shch", "щ"},
	{"ss", "ß"},
	{"th", "þثذظ"},
	{"ts", "ц"},
	{"ya", "я"},
	{"yu", "ю"},
	{"zh", "ж"},
	{"(c)", "©"},
	{"A", "ÁÀẢÃẠĂẮẰẲẴẶÂẤẦẨẪẬÄÅĀĄΑΆἈἉἊἋἌἍἎἏᾈᾉᾊᾋᾌᾍᾎᾏᾸᾹᾺΆᾼА"},
	{"B", "БΒ"},
	{"C", "ÇĆČĈĊ"},
	{"D", "ĎÐĐƉƊƋᴅᴆДΔ"},
	{"E", "ÉÈẺẼẸÊẾỀỂỄỆËĒĘĚĔĖΕΈἘἙἚἛἜἝΈῈЕЁЭЄƏ"},
	{"F", "ФΦ"},
	{"G", "ĞĠĢГҐΓ"},
	{"H", "ΗΉ"},
	{"I", "ÍÌỈĨỊÎÏĪĬĮİΙΊΪἸἹἻἼἽἾἿῘῙῚΊИІЇ"},
	{"K", "КΚ"},
	{"L", "ĹŁЛΛĻ"},
	{"M", "МΜ"},
	{"N", "ŃÑŇŅŊНΝ"},
	{"O", "ÓÒỎÕỌÔỐỒỔỖỘƠỚỜỞỠỢÖØŌŐŎΟΌὈὉὊὋὌὍῸΌОΘӨ"},
	{"P", "ПΠ"},
	{"R", "ŘŔРΡ"},
	{"S", "ŞŜȘŠŚСΣ"},
	{"T", "ŤŢŦȚТΤ"},
	{"U", "ÚÙỦŨỤƯỨỪỬỮỰÛÜŪŮŰŬŲУ"},
	{"V", "В"},
	{"W", "ΩΏ"},
	{"X", "Χ"},
	{"Y", "ÝỲỶỸỴŸῨῩῪΎЫЙΥΫ"},
	{"Z", "ŹŽŻЗΖ"},
	{"AE", "Æ"},
	{"CH", "Ч"},
	{"DJ", "Ђ"},
	{"DZ", "Џ"},
	{"KH", "Х"},
	{"LJ", "Љ"},
	{"NJ", "Њ"},
	{"PS", "Ψ"},
	{"SH", "Ш"},
	{"SHCH", "Щ"},
	{"SS", "ẞ"},
	{"TH", "Þ"},
	{"TS", "Ц"},
	{"YA", "Я"},
	{"YU", "Ю"},
	{"ZH", "Ж"},
	// no-break and typographic spaces
	{" ", "\u00a0\u2000\u2001\u2002\u2003\u2004\u2005\u2006\u2007\u2008\u2009\u200a\u202f\u205f\u3000"},
}

func buildASCIITable() map[rune]string {
	table := make(map[rune]string, 700)
	for _, entry := range transliterations {
		for _, r := range entry.chars {
			if _, exists := table[r]; !exists {
				table[r] = entry.ascii
			}
		}
	}
	return table
}
