package constants

// SwipeHintSVG is the chevron drawn just above the top card while the deck is idle.
const SwipeHintSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path fill="#FFFFFF" d="M7.41 8.59 12 13.17l4.59-4.58L18 10l-6 6-6-6 1.41-1.41z"/>
<path fill="#FFFFFF" fill-opacity="0.5" d="M7.41 2.59 12 7.17l4.59-4.58L18 4l-6 6-6-6 1.41-1.41z"/>
</svg>`

// Button glyphs shown in the footer (Material Design Icons code points).
const (
	Start = "\U000F040A" // Play/start button icon
	Down  = "\U000F0045" // Arrow down icon
)
