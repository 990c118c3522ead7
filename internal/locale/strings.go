package locale

import "github.com/DanRulev/moviebot.git/internal/models"

var messages = map[Key]map[models.Language]string{
	KeyTitle: {
		models.LangEN: "🎬 Movie Recommendation System",
		models.LangES: "🎬 Sistema de Recomendación de Películas",
		models.LangPT: "🎬 Sistema de Recomendação de Filmes",
	},
	KeyDescription: {
		models.LangEN: "This system suggests movies based on the chosen genre and a pre-trained model.",
		models.LangES: "Este sistema sugiere películas según el género elegido y un modelo preentrenado.",
		models.LangPT: "Este sistema sugere filmes com base no gênero escolhido e em um modelo pré-treinado.",
	},
	KeyChooseGenre: {
		models.LangEN: "Choose a movie genre:",
		models.LangES: "Elige un género de película:",
		models.LangPT: "Escolha um gênero de filme:",
	},
	KeyPlayAudio: {
		models.LangEN: "🔊 Click to listen to the selected option:",
		models.LangES: "🔊 Haz clic para escuchar la opción seleccionada:",
		models.LangPT: "🔊 Clique para ouvir a opção selecionada:",
	},
	KeyGetRecommendations: {
		models.LangEN: "Get Recommendations",
		models.LangES: "Obtener Recomendaciones",
		models.LangPT: "Obter Recomendações",
	},
	KeyLoadingModel: {
		models.LangEN: "🔍 Generating movie recommendations...",
		models.LangES: "🔍 Generando recomendaciones de películas...",
		models.LangPT: "🔍 Gerando recomendações de filmes...",
	},
	KeyRecommendationSuccess: {
		models.LangEN: "✨ Here are your movie recommendations:",
		models.LangES: "✨ Aquí están tus recomendaciones de películas:",
		models.LangPT: "✨ Aqui estão suas recomendações de filmes:",
	},
	KeyNoRecommendations: {
		models.LangEN: "⚠ No recommendations found for the selected genre.",
		models.LangES: "⚠ No se encontraron recomendaciones para el género seleccionado.",
		models.LangPT: "⚠ Nenhuma recomendação encontrada para o gênero selecionado.",
	},
	KeyFooter: {
		models.LangEN: "📽️ Movie Recommendation System",
		models.LangES: "📽️ Sistema de Recomendación de Películas",
		models.LangPT: "📽️ Sistema de Recomendação de Filmes",
	},
	KeyChooseLanguage: {
		models.LangEN: "🌐 Choose your language:",
		models.LangES: "🌐 Elige tu idioma:",
		models.LangPT: "🌐 Escolha seu idioma:",
	},
	KeyChangeLanguage: {
		models.LangEN: "🌐 Change language",
		models.LangES: "🌐 Cambiar idioma",
		models.LangPT: "🌐 Mudar idioma",
	},
	KeyModelLoadFailed: {
		models.LangEN: "❌ The recommendation models could not be loaded. Please try again later.",
		models.LangES: "❌ No se pudieron cargar los modelos de recomendación. Inténtalo más tarde.",
		models.LangPT: "❌ Não foi possível carregar os modelos de recomendação. Tente novamente mais tarde.",
	},
	KeyAudioFailed: {
		models.LangEN: "⚠ The audio for the selected option could not be generated.",
		models.LangES: "⚠ No se pudo generar el audio de la opción seleccionada.",
		models.LangPT: "⚠ Não foi possível gerar o áudio da opção selecionada.",
	},
	KeySessionExpired: {
		models.LangEN: "⌛ This menu has expired. Let's start again.",
		models.LangES: "⌛ Este menú ha caducado. Empecemos de nuevo.",
		models.LangPT: "⌛ Este menu expirou. Vamos começar de novo.",
	},
	KeyRecommendationFailed: {
		models.LangEN: "❌ An error occurred while generating recommendations.",
		models.LangES: "❌ Ocurrió un error al generar las recomendaciones.",
		models.LangPT: "❌ Ocorreu um erro ao gerar as recomendações.",
	},
	KeyHelp: {
		models.LangEN: "/start — choose a genre\n/language — change the language\n/help — this message",
		models.LangES: "/start — elegir un género\n/language — cambiar el idioma\n/help — este mensaje",
		models.LangPT: "/start — escolher um gênero\n/language — mudar o idioma\n/help — esta mensagem",
	},
}

var genres = map[models.Language][]string{
	models.LangEN: {"Comedy", "Horror", "Science Fiction", "Action", "Thriller", "Mystery", "Documentary"},
	models.LangES: {"Comedia", "Terror", "Ciencia Ficción", "Acción", "Suspense", "Misterio", "Documental"},
	models.LangPT: {"Comédia", "Terror", "Ficção Científica", "Ação", "Thriller", "Mistério", "Documentário"},
}
