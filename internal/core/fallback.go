package core

// Pre-written guidance shown whenever the live provider cannot produce
// usable text. One document per supported language, selected solely by the
// resolved language; the texts are fixed and must stay byte-stable so
// clients can rely on them.

const fallbackEnglish = `Welcome to Lactamira! 🌸

Thank you for joining our maternal health community. While we're setting up your personalized guidance, here are some essential tips to get you started:

**🤱 Breastfeeding Support**
- Aim for 8-12 feeding sessions per day for newborns
- Watch for hunger cues: rooting, sucking motions, hand-to-mouth movements
- Ensure proper latch for comfortable feeding

**🥗 Nutrition Focus**
- Stay hydrated: aim for 8-10 glasses of water daily
- Include iron-rich foods: spinach, lentils, lean meats
- Don't forget calcium: dairy, leafy greens, fortified foods

**😴 Rest & Recovery**
- Sleep when your baby sleeps
- Accept help from family and friends
- Gentle movement when you feel ready

**📱 Using Lactamira**
- Track feeding sessions to identify patterns
- Monitor your baby's growth milestones
- Set reminders for important tasks

Remember, every mother's journey is unique. Trust your instincts and don't hesitate to reach out to healthcare providers with any concerns.

You're doing an amazing job! 💕`

const fallbackRussian = `Добро пожаловать в Лактамиру! 🌸

Спасибо, что присоединились к нашему сообществу материнского здоровья. Пока мы настраиваем ваши персональные рекомендации, вот несколько важных советов для начала:

**🤱 Поддержка грудного вскармливания**
- Стремитесь к 8-12 сеансам кормления в день для новорожденных
- Следите за признаками голода: поисковые движения, сосательные движения, движения рука-ко-рту
- Обеспечьте правильное прикладывание для комфортного кормления

**🥗 Фокус на питании**
- Поддерживайте гидратацию: стремитесь к 8-10 стаканам воды в день
- Включайте продукты, богатые железом: шпинат, чечевицу, нежирное мясо
- Не забывайте о кальции: молочные продукты, листовая зелень, обогащенные продукты

**😴 Отдых и восстановление**
- Спите, когда спит ваш малыш
- Принимайте помощь от семьи и друзей
- Легкие движения, когда почувствуете готовность

**📱 Использование Лактамиры**
- Отслеживайте сеансы кормления для выявления закономерностей
- Мониторьте этапы роста вашего малыша
- Устанавливайте напоминания для важных задач

Помните, путь каждой матери уникален. Доверяйте своим инстинктам и не стесняйтесь обращаться к медицинским работникам с любыми вопросами.

Вы делаете потрясающую работу! 💕`

const fallbackUzbek = `Laktamiraga xush kelibsiz! 🌸

Onalik salomatligi jamiyatimizga qo'shilganingiz uchun rahmat. Shaxsiy tavsiyalaringizni sozlayotgan vaqtda, boshlash uchun bir nechta muhim maslahatlar:

**🤱 Emizishni qo'llab-quvvatlash**
- Yangi tug'ilgan chaqaloqlar uchun kuniga 8-12 ta emizish seansiga intiling
- Ochlik belgilarini kuzating: qidiruv harakatlari, so'rish harakatlari, qo'l-og'izga harakatlar
- Qulay emizish uchun to'g'ri tutishni ta'minlang

**🥗 Ovqatlanishga e'tibor**
- Gidratatsiyani saqlang: kuniga 8-10 stakan suvga intiling
- Temirga boy ovqatlarni kiriting: ismaloq, yasmiq, yog'siz go'sht
- Kaltsiyni unutmang: sut mahsulotlari, bargli sabzavotlar, boyitilgan ovqatlar

**😴 Dam olish va tiklanish**
- Chaqaloqingiz uxlayotganda uxlang
- Oila va do'stlardan yordam qabul qiling
- Tayyor bo'lganingizda engil harakatlar

**📱 Laktamiradan foydalanish**
- Naqshlarni aniqlash uchun emizish seanslarini kuzating
- Chaqaloqingizning o'sish bosqichlarini kuzating
- Muhim vazifalar uchun eslatmalar o'rnating

Eslab qoling, har bir onaning yo'li noyobdir. O'z sezgilaringizga ishoning va har qanday savol bilan tibbiy xodimlarga murojaat qilishdan tortinmang.

Siz ajoyib ish qilyapsiz! 💕`

var fallbackTexts = map[Language]string{
	LanguageEnglish: fallbackEnglish,
	LanguageRussian: fallbackRussian,
	LanguageUzbek:   fallbackUzbek,
}

// FallbackText returns the pre-written guidance body for a language.
func FallbackText(lang Language) string {
	if text, ok := fallbackTexts[lang]; ok {
		return text
	}
	return fallbackEnglish
}

// FallbackDocument builds the complete fallback GuidanceDocument for a
// language.
func FallbackDocument(lang Language) GuidanceDocument {
	return GuidanceDocument{
		Text:     FallbackText(lang),
		Language: lang,
		Fallback: true,
	}
}
