package format

var (
	horizontalDecor = Decorations{
		CommentSize: 55, CommentMaxWidth: 1200, CommentX: 170, CommentDY: 1150,
		DateSize: 65, DateRight: 160, DateBottom: 95,
		TitleSize: 120, TitleDY: -1130,
		StoreSize: 100, StoreDY: 1130,
	}
	verticalDecor = Decorations{
		CommentSize: 50, CommentMaxWidth: 900, CommentX: 120, CommentDY: 1680,
		DateSize: 65, DateRight: 110, DateBottom: 80,
		TitleSize: 120, TitleDY: -1620,
		StoreSize: 80, StoreDY: 1670,
	}
	squareDecor = Decorations{
		CommentSize: 80, CommentMaxWidth: 1300, CommentX: 120, CommentDY: 1850,
		DateSize: 120, DateRight: 130, DateBottom: 80,
		TitleSize: 180, TitleDY: -1745,
		StoreSize: 120, StoreDY: 1850,
	}
	monitorDecor = Decorations{
		CommentSize: 32, CommentMaxWidth: 650, CommentX: 70, CommentDY: 490,
		DateSize: 32, DateRight: 70, DateBottom: 40,
		TitleSize: 55, TitleDY: -480,
		StoreSize: 45, StoreDY: 480,
	}
	horizontal2Decor = Decorations{
		CommentSize: 24, CommentMaxWidth: 500, CommentX: 30, CommentDY: 513,
		DateSize: 40, DateRight: 30, DateBottom: 20,
		TitleSize: 80, TitleDY: -490,
		StoreSize: 40, StoreDY: 510,
	}
)

var order = []ID{
	Horizontal8, Horizontal18, Horizontal36,
	Vertical4, Vertical9, Vertical16, Vertical25,
	Square2, Square6,
	Monitor3, Monitor12,
	Enhanced1, Enhanced2,
}

var catalog = map[ID]Spec{
	Horizontal8: {
		ID: Horizontal8, Template: TemplateHorizontal, Columns: 4, Rows: 2,
		Geometry: Geometry{
			TemplateWidth: 3579, TemplateHeight: 2551,
			XStart: 300, YStart: 362, XPitch: 775, YPitch: 980,
			CardWidth: 650, CardHeight: 910,
			FrameWidth: 650, FrameHeight: 200, FrameBorder: 15, FrameDX: -15, FrameDY: -200,
			NumberWidth: 325, NumberHeight: 60, NumberBorder: 5, NumberDX: 315, NumberDY: -270,
			NumberTextDX: -325, NumberTextDY: 218,
			NameSize: 70, PriceSize: 100, NumberSize: 38,
			NameDY: -175, PriceDY: -105,
			Decorations: horizontalDecor,
		},
	},
	Horizontal18: {
		ID: Horizontal18, Template: TemplateHorizontal, Columns: 6, Rows: 3,
		Geometry: Geometry{
			TemplateWidth: 3579, TemplateHeight: 2551,
			XStart: 250, YStart: 335, XPitch: 525, YPitch: 660,
			CardWidth: 450, CardHeight: 630,
			FrameWidth: 450, FrameHeight: 150, FrameBorder: 15, FrameDX: -15, FrameDY: -150,
			NumberWidth: 225, NumberHeight: 40, NumberBorder: 5, NumberDX: 215, NumberDY: -200,
			NumberTextDX: -225, NumberTextDY: 138,
			NameSize: 50, PriceSize: 70, NumberSize: 24,
			NameDY: -130, PriceDY: -70,
			Decorations: horizontalDecor,
		},
	},
	Horizontal36: {
		ID: Horizontal36, Template: TemplateHorizontal, Columns: 9, Rows: 4,
		Geometry: Geometry{
			TemplateWidth: 3579, TemplateHeight: 2551,
			XStart: 198, YStart: 332, XPitch: 356, YPitch: 494,
			CardWidth: 330, CardHeight: 462,
			FrameWidth: 330, FrameHeight: 120, FrameBorder: 12, FrameDX: -12, FrameDY: -120,
			NumberWidth: 165, NumberHeight: 25, NumberBorder: 4, NumberDX: 157, NumberDY: -153,
			NumberTextDX: -165, NumberTextDY: 93,
			NameSize: 40, PriceSize: 60, NumberSize: 20,
			NameDY: -100, PriceDY: -60,
			Decorations: horizontalDecor,
		},
	},
	Vertical4: {
		ID: Vertical4, Template: TemplateVertical, Columns: 2, Rows: 2,
		Geometry: Geometry{
			TemplateWidth: 2551, TemplateHeight: 3579,
			XStart: 225, YStart: 395, XPitch: 1100, YPitch: 1501,
			CardWidth: 1000, CardHeight: 1401,
			FrameWidth: 1000, FrameHeight: 260, FrameBorder: 20, FrameDX: -20, FrameDY: -260,
			NumberWidth: 500, NumberHeight: 80, NumberBorder: 10, NumberDX: 480, NumberDY: -360,
			NumberTextDX: -501, NumberTextDY: 389,
			NameSize: 100, PriceSize: 130, NumberSize: 60,
			NameDY: -230, PriceDY: -135,
			Decorations: verticalDecor,
		},
	},
	Vertical9: {
		ID: Vertical9, Template: TemplateVertical, Columns: 3, Rows: 3,
		Geometry: Geometry{
			TemplateWidth: 2551, TemplateHeight: 3579,
			XStart: 190, YStart: 365, XPitch: 745, YPitch: 1002,
			CardWidth: 680, CardHeight: 952,
			FrameWidth: 680, FrameHeight: 200, FrameBorder: 15, FrameDX: -15, FrameDY: -200,
			NumberWidth: 340, NumberHeight: 60, NumberBorder: 5, NumberDX: 330, NumberDY: -270,
			NumberTextDX: -340, NumberTextDY: 239,
			NameSize: 70, PriceSize: 100, NumberSize: 40,
			NameDY: -180, PriceDY: -110,
			Decorations: verticalDecor,
		},
	},
	Vertical16: {
		ID: Vertical16, Template: TemplateVertical, Columns: 4, Rows: 4,
		Geometry: Geometry{
			TemplateWidth: 2551, TemplateHeight: 3579,
			XStart: 180, YStart: 355, XPitch: 560, YPitch: 754,
			CardWidth: 510, CardHeight: 714,
			FrameWidth: 510, FrameHeight: 160, FrameBorder: 15, FrameDX: -15, FrameDY: -160,
			NumberWidth: 255, NumberHeight: 45, NumberBorder: 5, NumberDX: 245, NumberDY: -215,
			NumberTextDX: -255, NumberTextDY: 168,
			NameSize: 60, PriceSize: 90, NumberSize: 30,
			NameDY: -145, PriceDY: -90,
			Decorations: verticalDecor,
		},
	},
	Vertical25: {
		ID: Vertical25, Template: TemplateVertical, Columns: 5, Rows: 5,
		Geometry: Geometry{
			TemplateWidth: 2551, TemplateHeight: 3579,
			XStart: 170, YStart: 348, XPitch: 450, YPitch: 604,
			CardWidth: 410, CardHeight: 574,
			FrameWidth: 410, FrameHeight: 130, FrameBorder: 15, FrameDX: -15, FrameDY: -130,
			NumberWidth: 205, NumberHeight: 30, NumberBorder: 4, NumberDX: 197, NumberDY: -168,
			NumberTextDX: -206, NumberTextDY: 136,
			NameSize: 50, PriceSize: 70, NumberSize: 25,
			NameDY: -115, PriceDY: -64,
			Decorations: verticalDecor,
		},
	},
	Square2: {
		ID: Square2, Template: TemplateSquare, Columns: 2, Rows: 1,
		Geometry: Geometry{
			TemplateWidth: 4000, TemplateHeight: 4000,
			XStart: 300, YStart: 670, XPitch: 1790, YPitch: 2741,
			CardWidth: 1600, CardHeight: 2241,
			// Borderless caption frame hanging below the card.
			FrameWidth: 1600, FrameHeight: 500, FrameBorder: 0, FrameDX: 0, FrameDY: 100,
			NumberWidth: 800, NumberHeight: 120, NumberBorder: 10, NumberDX: 780, NumberDY: -140,
			NumberTextDX: -800, NumberTextDY: 1050,
			NameSize: 180, PriceSize: 280, NumberSize: 90,
			NameDY: 110, PriceDY: 280,
			Decorations: squareDecor,
		},
	},
	Square6: {
		ID: Square6, Template: TemplateSquare, Columns: 3, Rows: 2,
		Geometry: Geometry{
			TemplateWidth: 4000, TemplateHeight: 4000,
			XStart: 280, YStart: 590, XPitch: 1190, YPitch: 1571,
			CardWidth: 1050, CardHeight: 1471,
			FrameWidth: 1050, FrameHeight: 350, FrameBorder: 20, FrameDX: -20, FrameDY: -350,
			NumberWidth: 525, NumberHeight: 80, NumberBorder: 10, NumberDX: 505, NumberDY: -450,
			NumberTextDX: -525, NumberTextDY: 335,
			NameSize: 110, PriceSize: 180, NumberSize: 60,
			NameDY: -320, PriceDY: -190,
			Decorations: squareDecor,
		},
	},
	Monitor3: {
		ID: Monitor3, Template: TemplateMonitor, Columns: 3, Rows: 1,
		Geometry: Geometry{
			TemplateWidth: 1920, TemplateHeight: 1080,
			XStart: 110, YStart: 170, XPitch: 580, YPitch: 777,
			CardWidth: 540, CardHeight: 757,
			FrameWidth: 540, FrameHeight: 180, FrameBorder: 10, FrameDX: -10, FrameDY: -180,
			NumberWidth: 270, NumberHeight: 45, NumberBorder: 5, NumberDX: 260, NumberDY: -235,
			NumberTextDX: -270, NumberTextDY: 170,
			NameSize: 60, PriceSize: 90, NumberSize: 30,
			NameDY: -165, PriceDY: -95,
			Decorations: monitorDecor,
		},
	},
	Monitor12: {
		ID: Monitor12, Template: TemplateMonitor, Columns: 6, Rows: 2,
		Geometry: Geometry{
			TemplateWidth: 1920, TemplateHeight: 1080,
			XStart: 100, YStart: 155, XPitch: 290, YPitch: 409,
			CardWidth: 270, CardHeight: 379,
			FrameWidth: 270, FrameHeight: 100, FrameBorder: 8, FrameDX: -8, FrameDY: -100,
			NumberWidth: 135, NumberHeight: 23, NumberBorder: 3, NumberDX: 129, NumberDY: -129,
			NumberTextDX: -134, NumberTextDY: 74,
			NameSize: 30, PriceSize: 48, NumberSize: 15,
			NameDY: -90, PriceDY: -50,
			Decorations: monitorDecor,
		},
	},
	Enhanced1: {
		ID: Enhanced1, Template: TemplateSquare, Columns: 1, Rows: 1,
		Geometry: Geometry{
			TemplateWidth: 4000, TemplateHeight: 4000,
			XStart: 900, YStart: 570, XPitch: 2390, YPitch: 3581,
			CardWidth: 2200, CardHeight: 3081,
			FrameWidth: 3000, FrameHeight: 900, FrameBorder: 20, FrameDX: -420, FrameDY: -900,
			NumberWidth: 1500, NumberHeight: 180, NumberBorder: 20, NumberDX: 1060, NumberDY: -1160,
			NumberTextDX: -900, NumberTextDY: 490,
			NameSize: 280, PriceSize: 420, NumberSize: 140,
			NameMaxWidth: 3000,
			NameDY: -870, PriceDY: -490,
			Decorations: squareDecor,
		},
	},
	Enhanced2: {
		ID: Enhanced2, Template: TemplateHorizontal2, Columns: 2, Rows: 1,
		Geometry: Geometry{
			TemplateWidth: 1477, TemplateHeight: 1108,
			XStart: 119, YStart: 185, XPitch: 670, YPitch: 1298,
			CardWidth: 570, CardHeight: 798,
			FrameWidth: 650, FrameHeight: 180, FrameBorder: 10, FrameDX: -50, FrameDY: -180,
			NumberWidth: 325, NumberHeight: 50, NumberBorder: 5, NumberDX: 275, NumberDY: -250,
			NumberTextDX: -265, NumberTextDY: 175,
			NameSize: 64, PriceSize: 90, NumberSize: 40,
			NameMaxWidth: 650,
			NameDY: -170, PriceDY: -95,
			Decorations: horizontal2Decor,
		},
	},
}
