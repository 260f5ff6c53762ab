package render

import "fmt"

// SurahNames holds the Arabic surah names rendered onto the title cards.
// Index 0 is the two-word placeholder card; indices 1-114 are the surahs.
var SurahNames = []string{
	"اْسْمُ اٌلسُورَةِ",
	"ٱلْفَاتِحَةِ",
	"ٱلْبَقَرَةِ",
	"آلِ عِمْرَانَ",
	"ٱلنِّسَاءِ",
	"ٱلْمَائِدَةِ",
	"ٱلْأَنْعَامِ",
	"ٱلْأَعْرَافِ",
	"ٱلْأَنْفَالِ",
	"ٱلتَّوْبَةِ",
	"يُونُسَ",
	"هُودَ",
	"يُوسُفَ",
	"ٱلرَّعْدِ",
	"إِبْرَاهِيمَ",
	"ٱلْحِجْرِ",
	"ٱلنَّحْلِ",
	"ٱلْإِسْرَاءِ",
	"ٱلْكَهْفِ",
	"مَرْيَمَ",
	"طَهَ",
	"ٱلْأَنْبِيَاءِ",
	"ٱلْحَجِّ",
	"ٱلْمُؤْمِنُونَ",
	"ٱلنُّورِ",
	"ٱلْفُرْقَانِ",
	"ٱلشُّعَرَاءِ",
	"ٱلنَّمْلِ",
	"ٱلْقَصَصِ",
	"ٱلْعَنْكَبُوتِ",
	"ٱلرُّومِ",
	"لُقْمَانَ",
	"ٱلسَّجْدَةِ",
	"ٱلْأَحْزَابِ",
	"سَبَأٍ",
	"فَاطِرٍ",
	"يَسۤ",
	"ٱلصَّافَّاتِ",
	"صۤ",
	"ٱلزُّمَرِ",
	"غَافِرٍ",
	"فُصِّلَتْ",
	"ٱلشُّورَىٰ",
	"ٱلزُّخْرُفِ",
	"ٱلدُّخَانِ",
	"ٱلْجَاثِيَةِ",
	"ٱلْأَحْقَافِ",
	"مُحَمَّدٍ",
	"ٱلْفَتْحِ",
	"ٱلْحُجُرَاتِ",
	"قۤ",
	"ٱلذَّارِيَاتِ",
	"ٱلطُّورِ",
	"ٱلنَّجْمِ",
	"ٱلْقَمَرِ",
	"ٱلرَّحْمَٰنِ",
	"ٱلْوَاقِعَةِ",
	"ٱلْحَدِيدِ",
	"ٱلْمُجَادِلَةِ",
	"ٱلْحَشْرِ",
	"ٱلْمُمْتَحَنَةِ",
	"ٱلصَّفِّ",
	"ٱلْجُمُعَةِ",
	"ٱلْمُنَافِقُونَ",
	"ٱلتَّغَابُنِ",
	"ٱلطَّلَاقِ",
	"ٱلْتَّحْرِيمِ",
	"ٱلْمَلِكِ",
	"ٱلْقَلَمِ",
	"ٱلْحَاقَّةِ",
	"ٱلْمَعَارِجِ",
	"نُوحٍ",
	"ٱلْجِنِّ",
	"ٱلْمُزَّمِّلِ",
	"ٱلْمُدَّثِّرِ",
	"ٱلْقِيَامَةِ",
	"ٱلْإِنسَانِ",
	"ٱلْمُرْسَلَاتِ",
	"ٱلنَّبَأِ",
	"ٱلنَّازِعَاتِ",
	"عَبَسَ",
	"ٱلتَّكْوِيرِ",
	"ٱلْإِنفِطَارِ",
	"ٱلْمُطَفِّفِينَ",
	"ٱلْاِنشِقَاقِ",
	"ٱلْبُرُوجِ",
	"ٱلطَّارِقِ",
	"ٱلْأَعْلَى",
	"ٱلْغَاشِيَةِ",
	"ٱلْفَجْرِ",
	"ٱلْبَلَدِ",
	"ٱلشَّمْسِ",
	"ٱلَّيْلِ",
	"ٱلضُّحَى",
	"ٱلشَّرْحِ",
	"ٱلتِّينِ",
	"ٱلْعَلَقِ",
	"ٱلْقَدْرِ",
	"ٱلْبَيْنَةِ",
	"ٱلزَّلْزَلَةِ",
	"ٱلْعَادِيَاتِ",
	"ٱلْقَارِعَةِ",
	"ٱلتَّكَاثُرِ",
	"ٱلْعَصْرِ",
	"ٱلْهُمْزَةِ",
	"ٱلْفِيلِ",
	"قُرَيْشٍ",
	"ٱلْمَاعُونِ",
	"ٱلْكَوْثَرِ",
	"ٱلْكَافِرُونَ",
	"ٱلنَّصْرِ",
	"ٱلْمَسَدِ",
	"ٱلْإِخْلَاصِ",
	"ٱلْفَلَقِ",
	"ٱلنَّاسِ",
}

// Filename returns the drawable file name for a card index:
// surah_001.png … surah_114.png, or surah_name.png for the placeholder.
func Filename(index int) string {
	if index == 0 {
		return "surah_name.png"
	}

	return fmt.Sprintf("surah_%03d.png", index)
}

// BlurredFilename is the blurred variant of the placeholder card.
const BlurredFilename = "surah_name_blurred.png"
