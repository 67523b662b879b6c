package sentiment

// entry holds a word's polarity in [-1,1] and subjectivity in [0,1].
type entry struct {
	pol  float64
	subj float64
}

// lexicon is a compact polarity/subjectivity word list tuned for
// conversational text. Values follow the usual pattern-lexicon ranges.
var lexicon = map[string]entry{
	"amazing":      {0.9, 0.9},
	"awesome":      {0.9, 0.9},
	"awful":        {-0.9, 0.9},
	"bad":          {-0.7, 0.7},
	"beautiful":    {0.85, 0.9},
	"best":         {1.0, 0.3},
	"better":       {0.5, 0.5},
	"boring":       {-0.6, 0.8},
	"broken":       {-0.4, 0.4},
	"calm":         {0.3, 0.7},
	"caring":       {0.6, 0.7},
	"comfortable":  {0.5, 0.6},
	"confident":    {0.5, 0.7},
	"confused":     {-0.3, 0.7},
	"cool":         {0.35, 0.65},
	"creepy":       {-0.7, 0.8},
	"cute":         {0.5, 0.8},
	"dead":         {-0.6, 0.4},
	"difficult":    {-0.5, 0.6},
	"disappointed": {-0.6, 0.7},
	"dishonest":    {-0.7, 0.7},
	"dumb":         {-0.7, 0.8},
	"easy":         {0.4, 0.6},
	"enjoy":        {0.5, 0.5},
	"excellent":    {1.0, 1.0},
	"excited":      {0.6, 0.8},
	"fail":         {-0.6, 0.5},
	"fake":         {-0.6, 0.6},
	"fantastic":    {0.9, 0.9},
	"fine":         {0.2, 0.5},
	"friendly":     {0.5, 0.6},
	"frustrated":   {-0.6, 0.8},
	"frustrating":  {-0.6, 0.8},
	"fun":          {0.4, 0.6},
	"funny":        {0.35, 0.75},
	"genuine":      {0.5, 0.5},
	"glad":         {0.5, 0.7},
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"gross":        {-0.7, 0.8},
	"happy":        {0.8, 1.0},
	"hate":         {-0.8, 0.9},
	"healthy":      {0.5, 0.5},
	"helpful":      {0.45, 0.5},
	"honest":       {0.55, 0.6},
	"hopeless":     {-0.7, 0.8},
	"horrible":     {-1.0, 1.0},
	"hurt":         {-0.6, 0.7},
	"ignored":      {-0.4, 0.5},
	"immature":     {-0.5, 0.7},
	"interesting":  {0.5, 0.5},
	"kind":         {0.6, 0.6},
	"lazy":         {-0.4, 0.7},
	"lie":          {-0.6, 0.6},
	"lonely":       {-0.5, 0.7},
	"love":         {0.5, 0.6},
	"lovely":       {0.7, 0.8},
	"lucky":        {0.5, 0.6},
	"mean":         {-0.35, 0.55},
	"mess":         {-0.4, 0.5},
	"miserable":    {-0.8, 0.9},
	"nice":         {0.6, 1.0},
	"pathetic":     {-0.8, 0.9},
	"perfect":      {1.0, 1.0},
	"pleasant":     {0.6, 0.7},
	"poor":         {-0.4, 0.6},
	"pretty":       {0.5, 0.7},
	"problem":      {-0.3, 0.3},
	"respectful":   {0.5, 0.5},
	"rude":         {-0.6, 0.7},
	"sad":          {-0.5, 1.0},
	"scared":       {-0.5, 0.8},
	"selfish":      {-0.6, 0.7},
	"serious":      {-0.1, 0.4},
	"sick":         {-0.5, 0.7},
	"smart":        {0.4, 0.6},
	"sorry":        {-0.2, 0.5},
	"strange":      {-0.25, 0.7},
	"stupid":       {-0.8, 0.9},
	"sweet":        {0.55, 0.75},
	"terrible":     {-1.0, 1.0},
	"thank":        {0.4, 0.4},
	"thanks":       {0.4, 0.4},
	"tired":        {-0.3, 0.5},
	"toxic":        {-0.8, 0.8},
	"trust":        {0.3, 0.4},
	"ugly":         {-0.7, 0.8},
	"unhappy":      {-0.6, 0.8},
	"upset":        {-0.5, 0.8},
	"weird":        {-0.3, 0.7},
	"well":         {0.2, 0.3},
	"wonderful":    {0.9, 0.9},
	"worried":      {-0.4, 0.7},
	"worse":        {-0.6, 0.6},
	"worst":        {-1.0, 1.0},
	"wrong":        {-0.5, 0.5},
}

// negators flip the polarity of the sentiment word that follows.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nobody": {},
	"none": {}, "without": {}, "hardly": {},
}

// intensifiers scale the polarity of the sentiment word that follows.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "so": 1.2, "extremely": 1.5,
	"totally": 1.3, "absolutely": 1.5, "pretty": 1.1, "quite": 1.1,
	"slightly": 0.7, "somewhat": 0.8, "kinda": 0.8, "barely": 0.6,
}
