package domain

type BorderColor string

func (b BorderColor) String() string {
	return string(b)
}

const (
	BorderBlack      BorderColor = "black"
	BorderBorderless BorderColor = "borderless"
	BorderGold       BorderColor = "gold"
	BorderSilver     BorderColor = "silver"
	BorderWhite      BorderColor = "white"
	BorderYellow     BorderColor = "yellow"
)

// Frame is the frame layout of a printing, named after the year it was introduced.
type Frame string

func (f Frame) String() string {
	return string(f)
}

const (
	Frame1993   Frame = "1993"
	Frame1997   Frame = "1997"
	Frame2003   Frame = "2003"
	Frame2015   Frame = "2015"
	FrameFuture Frame = "future"
)

type FrameEffect string

func (f FrameEffect) String() string {
	return string(f)
}

const (
	FrameEffectLegendary      FrameEffect = "legendary"
	FrameEffectMiracle        FrameEffect = "miracle"
	FrameEffectNyxtouched     FrameEffect = "nyxtouched"
	FrameEffectDraft          FrameEffect = "draft"
	FrameEffectDevoid         FrameEffect = "devoid"
	FrameEffectTombstone      FrameEffect = "tombstone"
	FrameEffectColorshifted   FrameEffect = "colorshifted"
	FrameEffectInverted       FrameEffect = "inverted"
	FrameEffectSunMoonDFC     FrameEffect = "sunmoondfc"
	FrameEffectCompassLandDFC FrameEffect = "compasslanddfc"
	FrameEffectOriginPWDFC    FrameEffect = "originpwdfc"
	FrameEffectMoonEldraziDFC FrameEffect = "mooneldrazidfc"
	FrameEffectShowcase       FrameEffect = "showcase"
	FrameEffectExtendedArt    FrameEffect = "extendedart"
	FrameEffectCompanion      FrameEffect = "companion"
	FrameEffectEtched         FrameEffect = "etched"
	FrameEffectSnow           FrameEffect = "snow"
)

// Game a printing is available in.
type Game string

func (g Game) String() string {
	return string(g)
}

const (
	GamePaper Game = "paper"
	GameArena Game = "arena"
	GameMTGO  Game = "mtgo"
)

type Finish string

const (
	FinishFoil    Finish = "foil"
	FinishNonfoil Finish = "nonfoil"
	FinishEtched  Finish = "etched"
)
