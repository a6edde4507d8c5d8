package plan

// beginnerTips rotates motivational and safety advice through the plan.
// Indexed modulo the table size so any day value is valid.
var beginnerTips = []string{
	"Start slow and focus on endurance, not speed. Your pace should allow you to hold a conversation.",
	"Listen to your body and rest when needed. It's better to take an extra rest day than get injured.",
	"Stay hydrated before, during, and after running. Carry water on longer runs.",
	"Proper footwear is essential for injury prevention. Visit a running store for gait analysis.",
	"Consistency is more important than intensity. Aim to complete each session rather than go fast.",
	"Rest days are just as important as workout days. Your muscles grow and repair during rest.",
	"Celebrate small victories along the way! Every completed session is an achievement.",
	"Focus on your breathing. Try to breathe in through your nose and out through your mouth.",
	"Warm up properly with a brisk 5-minute walk before each running session.",
	"Cool down with gentle walking and light stretching to prevent stiffness.",
	"Consider running with a friend or joining a local C25K group for motivation.",
	"Track your progress in a journal or app to see how far you've come.",
	"Don't be discouraged if you need to repeat a week - everyone progresses at their own pace.",
	"Plan your route in advance and choose safe, well-lit paths.",
	"Listen to upbeat music or podcasts to keep yourself motivated during runs.",
	"Eat a light snack 30 minutes before running if you need energy, but avoid heavy meals.",
	"Focus on landing mid-foot rather than on your heels to reduce impact.",
	"Keep your arms relaxed and swing them naturally at your sides.",
	"If you feel pain (not just discomfort), stop and rest. Consult a doctor if pain persists.",
	"Remember why you started this journey and keep that motivation in mind during tough sessions.",
}

// BeginnerTip returns the tip for the given day of the plan. The table
// rotates, so day may be any non-negative value.
func BeginnerTip(day int) string {
	return beginnerTips[day%len(beginnerTips)]
}

// Tips returns a copy of the full tip table.
func Tips() []string {
	out := make([]string, len(beginnerTips))
	copy(out, beginnerTips)
	return out
}
