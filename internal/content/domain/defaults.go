package domain

// PlaceholderAvatar is a 1x1 transparent GIF served whenever no avatar has
// been stored.
const PlaceholderAvatar = "data:image/gif;base64,R0lGODlhAQABAAAAACwAAAAAAQABAAACADs="

// DefaultHeroContent returns the compiled-in hero shown before the first
// upsert. Injected into the hero store at construction so tests can swap it.
func DefaultHeroContent() HeroContent {
	return HeroContent{
		Avatar:           PlaceholderAvatar,
		FullName:         "Stefan Dorosh",
		ShortDescription: "Full Stack Web Developer",
		LongDescription: "Welcome to my portfolio! I'm a passionate developer with expertise " +
			"in building modern web applications. I love creating innovative solutions " +
			"and bringing ideas to life through code.",
	}
}
