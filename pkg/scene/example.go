// example.go - Sample scene and copy file for adstencil init.
package scene

// ExampleJSON returns a sample scene.json and copy file: a feed and a
// stories variant for two campaigns, a chat screenshot and an app
// screenshot in a device frame.
//
// Body text uses the embedded Go fonts. Stars and check marks come from
// fonts/DejaVuSans.ttf next to the scene, since the Go fonts lack them.
func ExampleJSON() (sceneJSON, dataJSON string) {
	sceneJSON = `{
  "meta": {
    "name": "PraticOS Meta Ads",
    "version": "1.0",
    "author": "adstencil",
    "description": "WhatsApp and app creatives for feed and stories"
  },
  "theme": {
    "gradient": { "top": "#0a1e50", "bottom": "#143c8c" },
    "palette": { "badge": "#ffffff23" },
    "fonts": { "symbol": { "path": "fonts/DejaVuSans.ttf" } },
    "symbols": "★✓"
  },
  "assets": {
    "logo":     { "path": "assets/logo.png" },
    "whatsapp": { "path": "assets/whatsapp_chat.png" },
    "app":      { "path": "assets/app_home.png" }
  },
  "output": { "format": "png" },
  "variants": [
    {
      "name": "whatsapp_feed",
      "canvas": { "preset": "instagram_square" },
      "layers": [
        { "id": "logo", "kind": "image", "asset": "logo", "height": 65, "x": 40, "y": 35 },
        { "id": "headline", "kind": "text", "text": "Crie OS pelo\nWhatsApp", "font": "bold", "size": 68, "textShadow": true, "x": 40, "y": 115 },
        { "id": "subtitle", "kind": "text", "text": "Mande uma foto, um áudio ou texto.\nA IA cria a OS pra você.", "font": "medium", "size": 30, "color": "white80", "x": 40, "y": 280 },
        { "id": "chat", "kind": "image", "asset": "whatsapp", "crop": { "top": 88, "bottom": 88 }, "height": 850, "cornerRadius": 28,
          "align": "right", "x": 20, "y": 360, "shadow": { "offset": [6, 6], "blur": 15 } },
        { "id": "rating", "kind": "badge", "text": "4.8 ★  ·  +10.000 OS criadas", "size": 24, "x": 40, "y": 75, "from": "bottom" }
      ]
    },
    {
      "name": "whatsapp_stories",
      "canvas": { "preset": "instagram_story" },
      "layers": [
        { "id": "logo", "kind": "image", "asset": "logo", "height": 75, "align": "center", "y": 60 },
        { "id": "headline", "kind": "text", "text": "Crie OS pelo\nWhatsApp", "font": "bold", "size": 72, "textShadow": true, "align": "center", "y": 160 },
        { "id": "subtitle", "kind": "text", "text": "Mande uma foto, um áudio\nou texto. A IA cria a OS.", "font": "medium", "size": 34, "color": "white80", "align": "center", "y": 340 },
        { "id": "chat", "kind": "image", "asset": "whatsapp", "crop": { "top": 88, "bottom": 88 }, "height": 1400, "maxWidth": 1040, "cornerRadius": 32,
          "align": "center", "y": 440, "shadow": { "offset": [6, 8], "blur": 18 } },
        { "id": "rating", "kind": "badge", "text": "4.8 ★  ·  +10.000 OS criadas", "size": 26, "align": "center", "y": 90, "from": "bottom" }
      ]
    },
    {
      "name": "app_feed",
      "canvas": { "preset": "instagram_square" },
      "layers": [
        { "id": "logo", "kind": "image", "asset": "logo", "height": 65, "x": 40, "y": 30 },
        { "id": "headline", "kind": "text", "text": "Chega de papel.\nControle suas OS\nno app.", "font": "bold", "size": 64, "textShadow": true, "x": 40, "y": 110 },
        { "id": "features", "kind": "checklist", "items": ["OS com fotos e valores", "Controle financeiro", "Agenda com lembretes"],
          "size": 28, "color": "white80", "spacing": 42, "x": 40, "y": 330 },
        { "id": "phone", "kind": "frame", "asset": "app", "height": 950, "align": "right", "x": 60, "y": 280, "shadow": { "offset": [6, 6], "blur": 18 } },
        { "id": "pricing", "kind": "badge", "text": "Grátis para começar  ·  Sem cartão", "size": 24, "x": 40, "y": 75, "from": "bottom" }
      ]
    },
    {
      "name": "app_stories",
      "canvas": { "preset": "instagram_story" },
      "layers": [
        { "id": "logo", "kind": "image", "asset": "logo", "height": 75, "align": "center", "y": 55 },
        { "id": "headline", "kind": "text", "text": "Chega de papel.\nControle suas OS\nno app.", "font": "bold", "size": 70, "textShadow": true, "align": "center", "y": 155 },
        { "id": "features", "kind": "checklist", "items": ["OS com fotos e valores", "Controle financeiro", "Agenda com lembretes"],
          "size": 32, "color": "white80", "gap": 12, "spacing": 48, "align": "center", "y": 405 },
        { "id": "phone", "kind": "frame", "asset": "app", "height": 1350, "align": "center", "y": 560, "shadow": { "offset": [6, 8], "blur": 18 } },
        { "id": "pricing", "kind": "badge", "text": "Grátis para começar  ·  Sem cartão", "size": 26, "align": "center", "y": 90, "from": "bottom" }
      ]
    }
  ]
}
`

	dataJSON = `{
  "layers": {
    "rating": { "text": "4.9 ★  ·  +12.000 OS criadas" },
    "app_stories/pricing": { "text": "Grátis para começar" }
  }
}
`
	return sceneJSON, dataJSON
}
