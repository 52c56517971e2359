package feedback

// Bilingual message tables. Keyed by severity bucket; one fixed string per
// bucket per language.

type bmiMessages struct {
	Underweight string
	Normal      string
	Overweight  string
	Obese       string
}

type bucketMessages struct {
	Poor     string
	Moderate string
	Good     string
}

type lifestyleMessages struct {
	Smoking      string
	Stress       string
	Water        string
	FastFood     string
	Coffee       string
	EnergyDrinks string
	Good         string
}

type messageTable struct {
	BMI       bmiMessages
	Sleep     bucketMessages
	Activity  bucketMessages
	Nutrition bucketMessages
	Lifestyle lifestyleMessages
}

var messagesEN = messageTable{
	BMI: bmiMessages{
		Underweight: "You are underweight. Consider consulting a healthcare provider for personalized advice on healthy weight gain.",
		Normal:      "Your BMI is in the healthy range. Keep maintaining a balanced diet and regular exercise.",
		Overweight:  "You are overweight. Focus on balanced nutrition and regular physical activity.",
		Obese:       "Your BMI indicates obesity. Please consult a healthcare provider for personalized advice.",
	},
	Sleep: bucketMessages{
		Poor:     "Your sleep duration is concerning. Adults need 7-9 hours of sleep. Try improving your sleep habits.",
		Moderate: "Your sleep duration is slightly below recommended. Aim for 7-9 hours of sleep.",
		Good:     "Your sleep duration is good! Keep maintaining healthy sleep habits.",
	},
	Activity: bucketMessages{
		Poor:     "Your physical activity level is low. Try to include at least 150 minutes of moderate activity per week.",
		Moderate: "You're getting some exercise, but try to increase it to meet recommended guidelines.",
		Good:     "Great job staying active! Keep maintaining this level of physical activity.",
	},
	Nutrition: bucketMessages{
		Poor:     "Your fruit and vegetable intake is low. Aim for at least 5 servings daily.",
		Moderate: "Try to increase your fruit and vegetable intake to 5 or more servings daily.",
		Good:     "Excellent fruit and vegetable intake! Keep up the healthy eating habits.",
	},
	Lifestyle: lifestyleMessages{
		Smoking:      "Smoking is harmful to your health. Consider quitting and seek support if needed.",
		Stress:       "Your stress levels are high. Consider stress management techniques or professional help.",
		Water:        "Try to increase your water intake to at least 2 liters per day.",
		FastFood:     "Consider reducing fast food consumption for better health.",
		Coffee:       "Your coffee intake is high. Consider reducing it to moderate levels.",
		EnergyDrinks: "Try to reduce or eliminate energy drink consumption.",
		Good:         "Your lifestyle habits are generally healthy. Keep it up!",
	},
}

var messagesAR = messageTable{
	BMI: bmiMessages{
		Underweight: "وزنك أقل من المعدل الطبيعي. يُنصح باستشارة مختص رعاية صحية للحصول على نصائح شخصية لزيادة الوزن بشكل صحي.",
		Normal:      "مؤشر كتلة جسمك في النطاق الصحي. حافظ على نظام غذائي متوازن وممارسة الرياضة بانتظام.",
		Overweight:  "وزنك زائد. ركز على التغذية المتوازنة والنشاط البدني المنتظم.",
		Obese:       "مؤشر كتلة جسمك يشير إلى السمنة. يرجى استشارة مختص رعاية صحية للحصول على نصائح شخصية.",
	},
	Sleep: bucketMessages{
		Poor:     "مدة نومك مقلقة. يحتاج البالغون إلى 7-9 ساعات من النوم. حاول تحسين عادات نومك.",
		Moderate: "مدة نومك أقل قليلاً من الموصى به. اهدف إلى 7-9 ساعات من النوم.",
		Good:     "مدة نومك جيدة! حافظ على عادات النوم الصحية.",
	},
	Activity: bucketMessages{
		Poor:     "مستوى نشاطك البدني منخفض. حاول ممارسة 150 دقيقة على الأقل من النشاط المعتدل أسبوعياً.",
		Moderate: "تمارس بعض التمارين، لكن حاول زيادتها لتلبية التوصيات.",
		Good:     "عمل رائع في البقاء نشيطاً! حافظ على هذا المستوى من النشاط البدني.",
	},
	Nutrition: bucketMessages{
		Poor:     "تناولك للفواكه والخضروات منخفض. اهدف إلى 5 حصص على الأقل يومياً.",
		Moderate: "حاول زيادة تناول الفواكه والخضروات إلى 5 حصص أو أكثر يومياً.",
		Good:     "ممتاز! حافظ على عادات الأكل الصحية الخاصة بك.",
	},
	Lifestyle: lifestyleMessages{
		Smoking:      "التدخين ضار بصحتك. فكر في الإقلاع عنه واطلب الدعم إذا احتجت.",
		Stress:       "مستويات التوتر لديك مرتفعة. فكر في تقنيات إدارة التوتر أو المساعدة المهنية.",
		Water:        "حاول زيادة شرب الماء إلى لترين على الأقل يومياً.",
		FastFood:     "فكر في تقليل استهلاك الوجبات السريعة لصحة أفضل.",
		Coffee:       "استهلاكك للقهوة مرتفع. فكر في تقليله إلى مستويات معتدلة.",
		EnergyDrinks: "حاول تقليل أو إيقاف استهلاك مشروبات الطاقة.",
		Good:         "عاداتك الحياتية صحية بشكل عام. استمر على هذا النحو!",
	},
}

func messagesFor(language string) *messageTable {
	if language == "ar" {
		return &messagesAR
	}
	return &messagesEN
}
