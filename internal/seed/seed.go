// Package seed bundles a starter exercise catalog so a fresh vault has
// something to reference before the user writes their own documents.
package seed

import (
	"context"

	"github.com/gricha/obsidian-gym-tracker/internal/catalog"
	"github.com/gricha/obsidian-gym-tracker/internal/models"
)

// Populate writes every bundled exercise the catalog does not already
// have. Ids already present are skipped, never overwritten, so running
// it twice is harmless. Returns how many documents were created and how
// many were skipped.
func Populate(ctx context.Context, exercises *catalog.Exercises) (created, skipped int, err error) {
	if _, err := exercises.LoadAll(ctx); err != nil {
		return 0, 0, err
	}
	for _, ex := range Exercises() {
		if _, ok := exercises.GetByID(ex.ID); ok {
			skipped++
			continue
		}
		if err := exercises.Create(ctx, ex); err != nil {
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}

// Exercises returns a copy of the bundled catalog.
func Exercises() []models.Exercise {
	out := make([]models.Exercise, len(bundled))
	copy(out, bundled)
	return out
}

var bundled = []models.Exercise{
	{
		ID:           "barbell-bench-press",
		Name:         "Barbell Bench Press",
		Muscles:      models.Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps", "shoulders"}},
		Type:         "compound",
		Equipment:    "barbell",
		Alternatives: []string{"dumbbell-bench-press", "machine-chest-press"},
		Description: `## How to Perform
1. Lie flat on bench with feet firmly planted
2. Grip bar slightly wider than shoulder width
3. Unrack and lower bar to mid-chest with control
4. Press up explosively, locking out at top

## Cues
- Retract shoulder blades and maintain arch
- "Bend the bar" to engage lats
- Keep elbows at 45-75 degree angle`,
	},
	{
		ID:           "dumbbell-bench-press",
		Name:         "Dumbbell Bench Press",
		Muscles:      models.Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps", "shoulders"}},
		Type:         "compound",
		Equipment:    "dumbbell",
		Alternatives: []string{"barbell-bench-press", "machine-chest-press"},
		Description: `## How to Perform
1. Sit on bench with dumbbells on thighs
2. Kick back and position dumbbells at chest level
3. Press up, bringing dumbbells together at top
4. Lower with control to chest level

## Cues
- Greater range of motion than barbell
- Can rotate wrists for comfort
- Good for addressing imbalances`,
	},
	{
		ID:           "push-ups",
		Name:         "Push-Ups",
		Muscles:      models.Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps", "shoulders", "abs"}},
		Type:         "compound",
		Equipment:    "bodyweight",
		Alternatives: []string{"barbell-bench-press", "dumbbell-bench-press"},
		Description: `## How to Perform
1. Start in plank position, hands shoulder-width apart
2. Lower chest to ground, keeping body straight
3. Push back up to start

## Cues
- Keep core tight throughout
- Elbows at 45 degree angle
- Full range of motion`,
	},
	{
		ID:           "dips",
		Name:         "Dips",
		Muscles:      models.Muscles{Primary: []string{"chest", "triceps"}, Secondary: []string{"shoulders"}},
		Type:         "compound",
		Equipment:    "bodyweight",
		Alternatives: []string{"decline-bench-press", "cable-flyes"},
		Description: `## How to Perform
1. Grip parallel bars, arms straight
2. Lean forward slightly for chest emphasis
3. Lower until upper arms are parallel to ground
4. Press back up

## Cues
- Lean forward = more chest, upright = more triceps
- Don't go too deep if shoulder issues
- Add weight with belt when bodyweight is easy`,
	},
	{
		ID:           "pull-ups",
		Name:         "Pull-Ups",
		Muscles:      models.Muscles{Primary: []string{"lats", "back"}, Secondary: []string{"biceps"}},
		Type:         "compound",
		Equipment:    "bodyweight",
		Alternatives: []string{"lat-pulldown", "assisted-pull-ups"},
		Description: `## How to Perform
1. Grip bar with palms facing away, slightly wider than shoulders
2. Hang with arms extended
3. Pull up until chin clears bar
4. Lower with control

## Cues
- Initiate with lats, not biceps
- Avoid kipping or swinging
- Full dead hang at bottom`,
	},
	{
		ID:           "lat-pulldown",
		Name:         "Lat Pulldown",
		Muscles:      models.Muscles{Primary: []string{"lats"}, Secondary: []string{"biceps", "back"}},
		Type:         "compound",
		Equipment:    "cable",
		Alternatives: []string{"pull-ups", "chin-ups"},
		Description: `## How to Perform
1. Grip bar wide, sit with thighs secured
2. Pull bar to upper chest
3. Squeeze lats at bottom
4. Control the return

## Cues
- Don't lean back excessively
- Pull elbows down and back
- Feel the stretch at top`,
	},
	{
		ID:           "cable-row",
		Name:         "Seated Cable Row",
		Muscles:      models.Muscles{Primary: []string{"back", "lats"}, Secondary: []string{"biceps"}},
		Type:         "compound",
		Equipment:    "cable",
		Alternatives: []string{"barbell-row", "dumbbell-row"},
		Description: `## How to Perform
1. Sit with feet on platform, knees slightly bent
2. Pull handle to lower chest
3. Squeeze shoulder blades together
4. Return with control

## Cues
- Keep back straight, don't round
- Full stretch forward, full squeeze back`,
	},
	{
		ID:           "deadlift",
		Name:         "Conventional Deadlift",
		Muscles:      models.Muscles{Primary: []string{"back", "hamstrings", "glutes"}, Secondary: []string{"traps", "forearms"}},
		Type:         "compound",
		Equipment:    "barbell",
		Alternatives: []string{"romanian-deadlift", "sumo-deadlift"},
		Description: `## How to Perform
1. Stand with feet hip-width, bar over mid-foot
2. Hinge and grip bar just outside legs
3. Brace core, flatten back
4. Drive through floor, extending hips and knees together
5. Lock out at top, then reverse

## Cues
- Bar stays close to body
- Don't round lower back
- Push the floor away`,
	},
	{
		ID:           "romanian-deadlift",
		Name:         "Romanian Deadlift",
		Muscles:      models.Muscles{Primary: []string{"hamstrings", "glutes"}, Secondary: []string{"back"}},
		Type:         "compound",
		Equipment:    "barbell",
		Alternatives: []string{"deadlift", "dumbbell-rdl"},
		Description: `## How to Perform
1. Start standing with bar at hips
2. Push hips back, lowering bar along legs
3. Keep slight knee bend, back flat
4. Feel hamstring stretch, then drive hips forward

## Cues
- Hip hinge, not a squat
- Bar stays close to legs
- Don't go lower than mid-shin`,
	},
	{
		ID:           "face-pulls",
		Name:         "Face Pulls",
		Muscles:      models.Muscles{Primary: []string{"shoulders", "traps"}, Secondary: []string{"back"}},
		Type:         "isolation",
		Equipment:    "cable",
		Alternatives: []string{"rear-delt-flyes", "band-pull-aparts"},
		Description: `## How to Perform
1. Set cable at face height with rope attachment
2. Pull rope to face, separating hands
3. Externally rotate shoulders at end
4. Return with control

## Cues
- Great for posture and shoulder health
- Pull to ears, not chest
- Squeeze rear delts`,
	},
	{
		ID:           "overhead-press",
		Name:         "Overhead Press",
		Muscles:      models.Muscles{Primary: []string{"shoulders"}, Secondary: []string{"triceps", "traps"}},
		Type:         "compound",
		Equipment:    "barbell",
		Alternatives: []string{"dumbbell-shoulder-press", "machine-shoulder-press"},
		Description: `## How to Perform
1. Grip bar at shoulder width, bar resting on front delts
2. Brace core, press bar overhead
3. Lock out with bar over mid-foot
4. Lower to shoulders

## Cues
- Keep core tight, don't lean back excessively
- Move head back slightly as bar passes
- Full lockout overhead`,
	},
	{
		ID:           "lateral-raises",
		Name:         "Lateral Raises",
		Muscles:      models.Muscles{Primary: []string{"shoulders"}},
		Type:         "isolation",
		Equipment:    "dumbbell",
		Alternatives: []string{"cable-lateral-raises", "machine-lateral-raises"},
		Description: `## How to Perform
1. Stand with dumbbells at sides
2. Raise arms out to sides until parallel to ground
3. Lower with control

## Cues
- Slight bend in elbows
- Lead with elbows, not hands
- Don't swing or use momentum`,
	},
	{
		ID:           "barbell-curl",
		Name:         "Barbell Curl",
		Muscles:      models.Muscles{Primary: []string{"biceps"}, Secondary: []string{"forearms"}},
		Type:         "isolation",
		Equipment:    "barbell",
		Alternatives: []string{"dumbbell-curl", "ez-bar-curl"},
		Description: `## How to Perform
1. Stand with bar at arms length, palms up
2. Curl bar to shoulders, keeping elbows stationary
3. Squeeze biceps at top
4. Lower with control

## Cues
- Don't swing or use momentum
- Keep elbows at sides
- Full range of motion`,
	},
	{
		ID:           "hammer-curl",
		Name:         "Hammer Curl",
		Muscles:      models.Muscles{Primary: []string{"biceps", "forearms"}},
		Type:         "isolation",
		Equipment:    "dumbbell",
		Alternatives: []string{"cross-body-hammer-curl", "rope-hammer-curl"},
		Description: `## How to Perform
1. Hold dumbbells with neutral grip (palms facing each other)
2. Curl up keeping neutral grip
3. Lower with control

## Cues
- Hits brachialis and brachioradialis more
- Good for forearm development`,
	},
	{
		ID:           "tricep-pushdown",
		Name:         "Tricep Pushdown",
		Muscles:      models.Muscles{Primary: []string{"triceps"}},
		Type:         "isolation",
		Equipment:    "cable",
		Alternatives: []string{"rope-pushdown", "overhead-tricep-extension"},
		Description: `## How to Perform
1. Set cable high, grip bar or rope
2. Keep elbows at sides
3. Push down until arms are straight
4. Return with control

## Cues
- Don't let elbows flare
- Squeeze triceps at bottom
- Can use different attachments`,
	},
	{
		ID:           "skull-crushers",
		Name:         "Skull Crushers",
		Muscles:      models.Muscles{Primary: []string{"triceps"}},
		Type:         "isolation",
		Equipment:    "ez-bar",
		Alternatives: []string{"overhead-tricep-extension", "tricep-pushdown"},
		Description: `## How to Perform
1. Lie on bench, hold bar above chest
2. Lower bar to forehead by bending elbows
3. Extend back up

## Cues
- Keep upper arms stationary
- Can lower to behind head for more stretch
- Use EZ bar for wrist comfort`,
	},
	{
		ID:           "barbell-squat",
		Name:         "Barbell Back Squat",
		Muscles:      models.Muscles{Primary: []string{"quads", "glutes"}, Secondary: []string{"hamstrings", "abs"}},
		Type:         "compound",
		Equipment:    "barbell",
		Alternatives: []string{"front-squat", "leg-press", "goblet-squat"},
		Description: `## How to Perform
1. Bar on upper back, feet shoulder width or wider
2. Brace core, push hips back
3. Descend until thighs are parallel or below
4. Drive up through heels

## Cues
- Knees track over toes
- Keep chest up
- Don't let knees cave in`,
	},
	{
		ID:           "leg-press",
		Name:         "Leg Press",
		Muscles:      models.Muscles{Primary: []string{"quads", "glutes"}, Secondary: []string{"hamstrings"}},
		Type:         "compound",
		Equipment:    "machine",
		Alternatives: []string{"barbell-squat", "hack-squat"},
		Description: `## How to Perform
1. Sit in machine, feet shoulder width on platform
2. Lower weight by bending knees
3. Press back up without locking knees

## Cues
- Foot placement changes emphasis
- High and wide = more glutes/hamstrings
- Low and narrow = more quads`,
	},
	{
		ID:           "bulgarian-split-squat",
		Name:         "Bulgarian Split Squat",
		Muscles:      models.Muscles{Primary: []string{"quads", "glutes"}, Secondary: []string{"hamstrings"}},
		Type:         "compound",
		Equipment:    "dumbbell",
		Alternatives: []string{"lunges", "split-squat"},
		Description: `## How to Perform
1. Rear foot elevated on bench
2. Lower until front thigh is parallel
3. Drive up through front leg

## Cues
- Brutal but effective
- Great for addressing imbalances
- Start with bodyweight`,
	},
	{
		ID:           "leg-curl",
		Name:         "Lying Leg Curl",
		Muscles:      models.Muscles{Primary: []string{"hamstrings"}},
		Type:         "isolation",
		Equipment:    "machine",
		Alternatives: []string{"seated-leg-curl", "nordic-curl"},
		Description: `## How to Perform
1. Lie face down, ankles under pad
2. Curl heels toward glutes
3. Squeeze hamstrings at top
4. Lower with control

## Cues
- Don't lift hips off pad
- Control the negative`,
	},
	{
		ID:           "hip-thrust",
		Name:         "Hip Thrust",
		Muscles:      models.Muscles{Primary: []string{"glutes"}, Secondary: []string{"hamstrings"}},
		Type:         "compound",
		Equipment:    "barbell",
		Alternatives: []string{"glute-bridge", "cable-pull-through"},
		Description: `## How to Perform
1. Upper back on bench, bar over hips
2. Drive hips up, squeezing glutes
3. Hold at top briefly
4. Lower with control

## Cues
- Posterior pelvic tilt at top
- Don't hyperextend lower back
- Great glute builder`,
	},
	{
		ID:           "standing-calf-raise",
		Name:         "Standing Calf Raise",
		Muscles:      models.Muscles{Primary: []string{"calves"}},
		Type:         "isolation",
		Equipment:    "machine",
		Alternatives: []string{"seated-calf-raise", "donkey-calf-raise"},
		Description: `## How to Perform
1. Shoulders under pads, balls of feet on platform
2. Lower heels for full stretch
3. Rise up on toes
4. Squeeze at top

## Cues
- Full range of motion is key
- Pause at top and bottom
- Don't bounce`,
	},
	{
		ID:           "plank",
		Name:         "Plank",
		Muscles:      models.Muscles{Primary: []string{"abs"}, Secondary: []string{"shoulders"}},
		Type:         "isolation",
		Equipment:    "bodyweight",
		Alternatives: []string{"dead-bug", "ab-wheel"},
		Description: `## How to Perform
1. Forearms and toes on ground
2. Keep body in straight line
3. Hold position

## Cues
- Don't let hips sag or pike up
- Squeeze glutes and brace abs
- Breathe normally`,
	},
}
